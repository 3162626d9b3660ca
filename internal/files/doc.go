// Package files provides file system discovery for the campus energy
// pipeline.
//
// Discovery scans the data folder, non-recursively, for meter source files
// with a recognized tabular extension (.csv, .xlsx, .xls). Each discovered
// file maps to exactly one building: the file name stem is the building's
// identity, regardless of anything the file content claims.
package files
