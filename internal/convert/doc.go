// Package convert reads a spreadsheet into catalog records for the one-shot
// convert command.
//
// Column headers map onto record field names verbatim; cell values carry
// over without semantic transformation. Headers that do not name a known
// record field are logged and dropped, since the record field set is closed.
// Supported inputs are .xlsx workbooks (first sheet) and .csv files.
package convert
