package entities

import "github.com/grazy/inventoryapp/internal/contract"

// Book is one row of the books table. Column names and declared types come
// from the contract package; see contract.ColumnSpecs.
type Book struct {
	ID                  int64   `gorm:"column:_id;primaryKey;autoIncrement" json:"_id"`
	ProductName         string  `gorm:"column:product_name;type:TEXT;not null" json:"product_name"`
	Quantity            float64 `gorm:"column:quantity;type:DOUBLE" json:"quantity"`
	Price               int64   `gorm:"column:price;type:INTEGER" json:"price"`
	SupplierName        string  `gorm:"column:supplier_name;type:TEXT" json:"supplier_name"`
	SupplierPhoneNumber string  `gorm:"column:supplier_phone_number;type:TEXT" json:"supplier_phone_number"`
}

func (Book) TableName() string {
	return contract.TableName
}
