package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gt4500/internal/bridge"
	"github.com/vovakirdan/gt4500/internal/core"
)

func TestRenderGauge(t *testing.T) {
	got := renderGauge(bridge.StoreStatus{Count: 3, Capacity: 5})
	if strings.Count(got, "■") != 3 || strings.Count(got, "□") != 2 {
		t.Errorf("Expected 3 loaded and 2 spent pips, got %q", got)
	}

	if !strings.Contains(renderGauge(bridge.StoreStatus{}), "no tubes") {
		t.Error("Zero-capacity store should render as no tubes")
	}
}

func TestRenderGaugeScalesLargeStores(t *testing.T) {
	got := renderGauge(bridge.StoreStatus{Count: 1, Capacity: 100})
	pips := strings.Count(got, "■") + strings.Count(got, "□")
	if pips != maxPips {
		t.Errorf("Expected %d pips, got %d", maxPips, pips)
	}
	if strings.Count(got, "■") != 1 {
		t.Error("A store with torpedoes left should show at least one loaded pip")
	}
}

func TestRenderSalvo(t *testing.T) {
	hit := renderSalvo(bridge.Salvo{Mode: core.FiringModeAll, PrimaryFired: true, SecondaryFired: true, Success: true})
	if !strings.Contains(hit, "TORPEDO AWAY") || !strings.Contains(hit, "primary + secondary") {
		t.Errorf("Unexpected hit line %q", hit)
	}

	miss := renderSalvo(bridge.Salvo{Mode: core.FiringModeSingle})
	if !strings.Contains(miss, "FIRE FAILED") || !strings.Contains(miss, "no store fired") {
		t.Errorf("Unexpected miss line %q", miss)
	}
}

func TestSalvoRowsNewestFirst(t *testing.T) {
	rows := salvoRows([]bridge.Salvo{
		{Mode: core.FiringModeSingle, PrimaryFired: true, Success: true},
		{Mode: core.FiringModeAll, PrimaryFired: true, SecondaryFired: true, Success: true},
		{Mode: core.FiringModeSingle},
	})

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "3" || rows[0][4] != "miss" || rows[0][3] != "-" {
		t.Errorf("Unexpected newest row %v", rows[0])
	}
	if rows[1][3] != "both" || rows[2][3] != "primary" {
		t.Errorf("Unexpected store columns %v / %v", rows[1], rows[2])
	}
}
