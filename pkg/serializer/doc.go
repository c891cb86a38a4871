// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer writer.Close()
//	if err := writer.Serialize(ctx, items); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// Slices of structs render as one row per element in table format; any other
// value is flattened into FIELD/VALUE pairs.
package serializer
