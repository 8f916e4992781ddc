package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MemgraphDriver struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphDriver(uri, username, password string) (*MemgraphDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphDriver{Driver: driver}, nil
}

func (d *MemgraphDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *MemgraphDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildIndices creates id and snapshot_id indices for every node label the
// exporter writes.
func (d *MemgraphDriver) BuildIndices(ctx context.Context) error {
	for _, label := range nodeLabels {
		for _, property := range []string{"id", "snapshot_id"} {
			q := fmt.Sprintf("CREATE INDEX ON :%s(%s);", label, property)
			if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
				// Index may already exist.
				log.Printf("Warning: failed to create index '%s': %v", q, err)
			}
		}
	}

	return nil
}
