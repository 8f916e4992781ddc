package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressesSimilar_PlotSuffixIgnored(t *testing.T) {
	// 45A and 45B are the same plot.
	assert.True(t, AddressesSimilar("Plot 45, Industrial Area, Nairobi", "Plot 45B, Westlands, Nairobi"))
	assert.True(t, AddressesSimilar("plot 45A, Industrial Area", "PLOT 45, Industrial Area"))
}

func TestAddressesSimilar_Symmetric(t *testing.T) {
	a := "Plot 45, X"
	b := "Plot 45B, Y"
	assert.Equal(t, AddressesSimilar(a, b), AddressesSimilar(b, a))
}

func TestAddressesSimilar_DifferentPlots(t *testing.T) {
	assert.False(t, AddressesSimilar("Plot 45, Industrial Area", "Plot 46, Industrial Area"))
}

func TestAddressesSimilar_NoPlotToken(t *testing.T) {
	// Without plot numbers on both sides there is no match, even for
	// identical strings.
	assert.False(t, AddressesSimilar("Mombasa Road, Nairobi", "Mombasa Road, Nairobi"))
	assert.False(t, AddressesSimilar("Plot 45, Nairobi", "45 Industrial Area, Nairobi"))
}

func TestAddressesSimilar_LeadingZeros(t *testing.T) {
	assert.True(t, AddressesSimilar("Plot 045, Nairobi", "Plot 45, Nairobi"))
}

func TestSamePhone(t *testing.T) {
	assert.True(t, SamePhone("+254 20 555 0001", "+254-20-555-0001"))
	assert.True(t, SamePhone("(254) 20 5550001", "254205550001"))
	assert.False(t, SamePhone("+254 20 555 0001", "+254 20 555 0002"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "254205550001", NormalizePhone("+254 20 555 0001"))
	assert.Equal(t, "", NormalizePhone("no digits here"))
}
