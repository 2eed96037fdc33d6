package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&UserVisit{},
		&Event{},
		&EventEntitlement{},
		&EventView{},
		&EventUpdate{},
	)
}
