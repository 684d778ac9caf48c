package dataset

// SampleFilename labels the built-in demo dataset on the dashboard.
const SampleFilename = "ejemplo_ventas.csv"

// Sample returns the built-in demo dataset served by GET /sample.
func Sample() *Dataset {
	columns := []string{"Fecha", "Producto", "Ventas", "Región"}
	data := [][]interface{}{
		{"2024-01-01", "Laptop", 1200, "Norte"},
		{"2024-01-02", "Mouse", 25, "Sur"},
		{"2024-01-03", "Teclado", 80, "Norte"},
		{"2024-01-04", "Monitor", 350, "Este"},
		{"2024-01-05", "Laptop", 1200, "Oeste"},
	}

	ds := &Dataset{Columns: columns}
	for _, rec := range data {
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = rec[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}
