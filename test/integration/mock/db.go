package mock

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"
)

// Db owns the on-disk SQLite file of one scenario so that the app can be
// restarted against the same data.
type Db struct {
	dir string
}

func NewDb() (*Db, error) {
	dir, err := os.MkdirTemp("", "mysavings-bdd-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario dir: %w", err)
	}
	return &Db{dir: dir}, nil
}

// URL is the DATABASE_URL of the scenario.
func (d *Db) URL() string {
	return "file:" + filepath.Join(d.dir, "mysavings.db")
}

func (d *Db) Remove() error {
	return os.RemoveAll(d.dir)
}

// CountRows counts the rows stored for model.
func CountRows(conn *gorm.DB, model any) (int64, error) {
	var count int64
	if err := conn.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
