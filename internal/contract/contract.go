// Package contract defines the addressing and storage contract for the
// inventory books table.
//
// Everything here is constant data: the content authority, the URIs built
// from it, the MIME types handed out for list and single-row results, and
// the table and column names used by the SQLite store. Callers should
// reference these names instead of repeating the literals.
//
// # Addressing
//
//	content://com.example.grazy.inventoryapp/books       all books
//	content://com.example.grazy.inventoryapp/books/42    the book with _id 42
//
// Any other path under the authority (for example ".../staff") is unknown
// and is rejected by MatchURI.
package contract

import "strconv"

const (
	// ContentAuthority names the whole books data source. The app's package
	// name is used since it is unique on the device.
	ContentAuthority = "com.example.grazy.inventoryapp"

	// Scheme is the URI scheme for content addresses.
	Scheme = "content"

	// BaseContentURI is the root of every URI served under the authority.
	BaseContentURI = Scheme + "://" + ContentAuthority

	// PathBooks is the path segment for books data.
	PathBooks = "books"

	// ContentURI addresses the books collection.
	ContentURI = BaseContentURI + "/" + PathBooks
)

// MIME prefixes for multi-row and single-row results.
const (
	CursorDirBaseType  = "vnd.android.cursor.dir"
	CursorItemBaseType = "vnd.android.cursor.item"
)

const (
	// ContentListType is the MIME type of ContentURI for a list of books.
	ContentListType = CursorDirBaseType + "/" + ContentAuthority + "/" + PathBooks

	// ContentItemType is the MIME type of ContentURI for a single book.
	ContentItemType = CursorItemBaseType + "/" + ContentAuthority + "/" + PathBooks
)

// TableName is the database table holding books. Each row is one book.
const TableName = "books"

// Column names of the books table.
const (
	// ColumnID is the unique row id, only meaningful inside the table. Type: INTEGER
	ColumnID = "_id"
	// Type: TEXT
	ColumnProductName = "product_name"
	// Type: DOUBLE
	ColumnQuantity = "quantity"
	// Type: INTEGER
	ColumnPrice = "price"
	// Type: TEXT
	ColumnSupplierName = "supplier_name"
	// ColumnSupplierPhoneNumber is stored as text so leading zeros and
	// symbols survive. Type: TEXT
	ColumnSupplierPhoneNumber = "supplier_phone_number"
)

// ContentURIFor builds the books collection URI under an arbitrary authority.
func ContentURIFor(authority string) string {
	return Scheme + "://" + authority + "/" + PathBooks
}

// BookURI returns the URI addressing a single book row.
func BookURI(id int64) string {
	return ContentURI + "/" + strconv.FormatInt(id, 10)
}
