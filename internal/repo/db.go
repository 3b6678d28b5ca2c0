package repo

import (
	"CartKeeper/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// InitDB открывает подключение к БД и выполняет автомиграции.
// При пустом DSN используется локальный файл SQLite (режим разработки),
// иначе ожидается строка подключения Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn == "" {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "cartkeeper.db"}
	} else {
		dial = postgres.Open(dsn)
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}
