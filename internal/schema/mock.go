package schema

// MockSchema returns the built-in purchase-order/inventory demo schema used
// when no live catalog is reachable. Callers receive it through the fallback
// path of discovery so that the report-building workflow always has schema
// data to work against.
func MockSchema() *DatabaseSchema {
	columns := []TableColumn{
		// PurchaseOrders
		{TableName: "dbo.PurchaseOrders", ColumnName: "PurchaseOrderID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.PurchaseOrders", ColumnName: "LocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.PurchaseOrders", ColumnName: "SupplierName", DataType: "nvarchar(100)", IsNullable: true},
		{TableName: "dbo.PurchaseOrders", ColumnName: "OrderDate", DataType: "datetime"},
		{TableName: "dbo.PurchaseOrders", ColumnName: "Status", DataType: "nvarchar(20)"},
		{TableName: "dbo.PurchaseOrders", ColumnName: "SuggestedQuantity", DataType: "decimal(18,2)", IsNullable: true},
		{TableName: "dbo.PurchaseOrders", ColumnName: "TotalAmount", DataType: "decimal(18,2)", IsNullable: true},

		// Locations
		{TableName: "dbo.Locations", ColumnName: "LocationID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Locations", ColumnName: "LocationName", DataType: "nvarchar(50)"},
		{TableName: "dbo.Locations", ColumnName: "Region", DataType: "nvarchar(50)", IsNullable: true},

		// Items
		{TableName: "dbo.Items", ColumnName: "ItemID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Items", ColumnName: "ItemName", DataType: "nvarchar(100)"},
		{TableName: "dbo.Items", ColumnName: "Category", DataType: "nvarchar(50)", IsNullable: true},
		{TableName: "dbo.Items", ColumnName: "UnitOfMeasure", DataType: "nvarchar(20)"},
		{TableName: "dbo.Items", ColumnName: "UnitCost", DataType: "decimal(18,4)", IsNullable: true},

		// Inventory
		{TableName: "dbo.Inventory", ColumnName: "InventoryID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Inventory", ColumnName: "ItemID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Items", ReferencedColumn: "ItemID"},
		{TableName: "dbo.Inventory", ColumnName: "LocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.Inventory", ColumnName: "QuantityOnHand", DataType: "decimal(18,2)"},
		{TableName: "dbo.Inventory", ColumnName: "LastCountDate", DataType: "datetime", IsNullable: true},

		// Transfers
		{TableName: "dbo.Transfers", ColumnName: "TransferID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Transfers", ColumnName: "ItemID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Items", ReferencedColumn: "ItemID"},
		{TableName: "dbo.Transfers", ColumnName: "FromLocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.Transfers", ColumnName: "ToLocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.Transfers", ColumnName: "Quantity", DataType: "decimal(18,2)"},
		{TableName: "dbo.Transfers", ColumnName: "TransferDate", DataType: "datetime"},

		// Waste
		{TableName: "dbo.Waste", ColumnName: "WasteID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Waste", ColumnName: "ItemID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Items", ReferencedColumn: "ItemID"},
		{TableName: "dbo.Waste", ColumnName: "LocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.Waste", ColumnName: "Quantity", DataType: "decimal(18,2)"},
		{TableName: "dbo.Waste", ColumnName: "Reason", DataType: "nvarchar(max)", IsNullable: true},
		{TableName: "dbo.Waste", ColumnName: "WasteDate", DataType: "datetime"},

		// Usage
		{TableName: "dbo.Usage", ColumnName: "UsageID", DataType: "int", IsPrimaryKey: true},
		{TableName: "dbo.Usage", ColumnName: "ItemID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Items", ReferencedColumn: "ItemID"},
		{TableName: "dbo.Usage", ColumnName: "LocationID", DataType: "int", IsForeignKey: true, ReferencedTable: "dbo.Locations", ReferencedColumn: "LocationID"},
		{TableName: "dbo.Usage", ColumnName: "QuantityUsed", DataType: "decimal(18,2)"},
		{TableName: "dbo.Usage", ColumnName: "UsageDate", DataType: "datetime"},
	}

	return &DatabaseSchema{
		Tables: []string{
			"dbo.Inventory",
			"dbo.Items",
			"dbo.Locations",
			"dbo.PurchaseOrders",
			"dbo.Transfers",
			"dbo.Usage",
			"dbo.Waste",
		},
		Columns:       columns,
		Relationships: BuildRelationships(columns),
	}
}
