package gopages

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openGORMMock opens a gorm session over a fresh sqlmock connection using
// the dialector built by newDialector.
func openGORMMock(dialect string, newDialector func(conn gorm.ConnPool) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		return dialect, nil, nil, err
	}

	db, err := gorm.Open(newDialector(conn), &gorm.Config{})
	if err != nil {
		return dialect, nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn gorm.ConnPool) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn gorm.ConnPool) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}
