package server

import (
	"context"
	"log"
	"os"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/sentinel/internal/config"
	"github.com/agenthands/sentinel/internal/core"
	"github.com/agenthands/sentinel/internal/core/cartel"
	"github.com/agenthands/sentinel/internal/dataset"
	"github.com/agenthands/sentinel/internal/driver"
)

// Server owns the current snapshot. Rebuilds swap the pointer atomically,
// so in-flight requests keep reading a consistent graph/cluster/score set.
type Server struct {
	Engine *core.Engine
	Port   string

	snapshot atomic.Pointer[core.Snapshot]
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars win over the config file.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		cfg.Memgraph.URI = uri
		cfg.Memgraph.Enabled = true
	}
	if user := os.Getenv("MEMGRAPH_USER"); user != "" {
		cfg.Memgraph.User = user
	}
	if pass := os.Getenv("MEMGRAPH_PASSWORD"); pass != "" {
		cfg.Memgraph.Password = pass
	}

	engine := core.NewEngine()
	engine.Detector = &cartel.Detector{
		MinCoBids:      cfg.Risk.MinCoBids,
		MinClusterSize: cfg.Risk.MinClusterSize,
	}
	engine.Workers = cfg.Risk.Workers

	if cfg.Memgraph.Enabled {
		d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		if err := d.BuildIndices(context.Background()); err != nil {
			log.Printf("Failed to build Memgraph indices: %v", err)
		}
		engine.Exporter = driver.NewExporter(d)
	}

	s := NewServerWith(engine, dataset.Synthetic())
	s.Port = cfg.Server.Port
	return s
}

// NewServerWith builds the initial snapshot from the given dataset.
func NewServerWith(engine *core.Engine, data *dataset.Dataset) *Server {
	s := &Server{Engine: engine}
	snap := engine.BuildSnapshot(data)
	s.snapshot.Store(snap)
	log.Printf("Built snapshot %s: %d nodes, %d edges, %d cartel clusters, %d risk scores",
		snap.ID, snap.Graph.NodeCount(), snap.Graph.EdgeCount(), len(snap.Clusters), len(snap.Scores))

	if err := engine.Export(context.Background(), snap); err != nil {
		log.Printf("Memgraph export failed: %v", err)
	}
	return s
}

func (s *Server) Snapshot() *core.Snapshot {
	return s.snapshot.Load()
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Health)

	api := r.Group("/api")
	api.GET("/stats", s.Stats)
	api.GET("/tenders", s.ListTenders)
	api.GET("/tenders/:id", s.TenderDetail)
	api.GET("/tenders/:id/graph", s.TenderGraph)
	api.GET("/graph/explore", s.ExploreGraph)
	api.GET("/graph/cartels", s.Cartels)
	api.GET("/companies/:id", s.Company)
	api.POST("/refresh", s.Refresh)

	return r
}
