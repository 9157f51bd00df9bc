// Package schema parses MySQL "describe table" dumps into an ordered list of
// column descriptors.
//
// Two input formats are supported:
//
//   - The XML resultset produced by `mysql --xml -e "describe user;"`, where each
//     <row> element describes one column via <field name="..."> children.
//   - The console table produced by plain `mysql -e "describe user;"`, the familiar
//     +---+---+ bordered grid with a header line naming the attributes.
//
// Parse sniffs the format from the document's first byte, so callers normally do
// not care which one they were handed:
//
//	s, err := schema.ParseFile("user.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, col := range s.Columns {
//		fmt.Println(col.Name(), col.Get("Type"))
//	}
//
// Every parsed column is guaranteed to carry the reserved "Field" attribute, the
// source column name. Attributes with empty values (including xsi:nil fields in
// the XML form and NULL cells in the console form) are omitted from the
// descriptor rather than stored as empty strings.
//
// A parsed Schema can be rendered back to the XML form with Write, which is how
// `mysqlcsvimport schema dump` materializes a schema document from a live server.
package schema
