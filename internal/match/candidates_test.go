package match

import (
	"testing"

	"github.com/reportsmith/schemamatch/internal/schema"
)

func TestTopCandidates(t *testing.T) {
	columns := []schema.TableColumn{
		{TableName: "dbo.Items", ColumnName: "ItemID"},
		{TableName: "dbo.Items", ColumnName: "ItemName"},
		{TableName: "dbo.Items", ColumnName: "Category"},
		{TableName: "dbo.Locations", ColumnName: "LocationName"},
	}

	got := TopCandidates("Item Name", columns, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	if got[0].Column.ColumnName != "ItemName" {
		t.Errorf("best candidate = %s, want ItemName", got[0].Column.ColumnName)
	}
	if got[0].Score != 1.0 {
		t.Errorf("best score = %v, want 1.0", got[0].Score)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("candidates not sorted: %v before %v", got[i-1].Score, got[i].Score)
		}
	}
}

// Equal scores keep the schema's column order, so repeated evaluations of
// the same schema always suggest the same columns.
func TestTopCandidatesStableTies(t *testing.T) {
	columns := []schema.TableColumn{
		{TableName: "dbo.PurchaseOrders", ColumnName: "LocationID"},
		{TableName: "dbo.Locations", ColumnName: "LocationID"},
		{TableName: "dbo.Inventory", ColumnName: "LocationID"},
	}

	got := TopCandidates("Location", columns, 3)

	wantOrder := []string{"dbo.PurchaseOrders", "dbo.Locations", "dbo.Inventory"}
	for i, want := range wantOrder {
		if got[i].Column.TableName != want {
			t.Errorf("candidate %d from %s, want %s", i, got[i].Column.TableName, want)
		}
	}
}

func TestTopCandidatesFewerColumnsThanN(t *testing.T) {
	columns := []schema.TableColumn{
		{TableName: "dbo.Items", ColumnName: "ItemID"},
	}

	if got := TopCandidates("anything", columns, 3); len(got) != 1 {
		t.Errorf("expected 1 candidate, got %d", len(got))
	}
}
