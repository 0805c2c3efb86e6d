package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrkitchen/qr-kitchen/internal/config"
)

func TestMySQL(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "with extras",
			db:   config.DB{User: "qr", Password: "pw", Host: "db", Port: 3306, Name: "kitchen", Extras: "parseTime=True"},
			want: "qr:pw@tcp(db:3306)/kitchen?parseTime=True",
		},
		{
			name: "without extras",
			db:   config.DB{User: "qr", Password: "pw", Host: "db", Port: 3306, Name: "kitchen"},
			want: "qr:pw@tcp(db:3306)/kitchen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MySQL(&tt.db))
		})
	}
}

func TestPostgres(t *testing.T) {
	db := config.DB{User: "qr", Password: "p@ss", Host: "db", Port: 5432, Name: "kitchen", Extras: "sslmode=disable"}

	assert.Equal(t, "postgres://qr:p%40ss@db:5432/kitchen?sslmode=disable", Postgres(&db))
}
