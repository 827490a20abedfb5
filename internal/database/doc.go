// Package database opens the inventory SQLite database and materialises the
// books table described by the contract package.
//
// It plays the role of the app's open-helper: the table is created on first
// open and left alone afterwards. Row access is not provided here.
//
//	db, err := database.NewDatabase("./inventory.db", logger.Warn)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
// Use the inspect package to check a database that was created elsewhere.
package database
