// Package mysql reads table definitions from a live MySQL server.
//
// It produces the same column descriptors as parsing a saved describe
// document, so a schema can be dumped once and checked into a project, or
// read fresh at import time.
//
// Example usage:
//
//	client, err := mysql.NewClient(ctx, "user:pass@tcp(localhost:3306)/mydb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	s, err := client.Describe(ctx, "user")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Persist the schema document for later imports
//	f, _ := os.Create("user.xml")
//	defer f.Close()
//	_ = s.Write(f)
package mysql
