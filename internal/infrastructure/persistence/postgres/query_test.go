package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crm_records/internal/domain/repository"
)

func TestSortClause(t *testing.T) {
	columns := map[string]string{"name": "name", "created_at": "created_at"}

	tests := []struct {
		name    string
		sort    *repository.Sort
		want    string
		wantErr error
	}{
		{
			name: "nil sort means no clause",
			sort: nil,
			want: "",
		},
		{
			name: "empty key means no clause",
			sort: &repository.Sort{},
			want: "",
		},
		{
			name: "ascending",
			sort: &repository.Sort{Key: "name"},
			want: " ORDER BY name ASC",
		},
		{
			name: "descending",
			sort: &repository.Sort{Key: "created_at", Desc: true},
			want: " ORDER BY created_at DESC",
		},
		{
			name:    "unknown key rejected",
			sort:    &repository.Sort{Key: "password"},
			wantErr: repository.ErrInvalidSortKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sortClause(tt.sort, columns)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhereClause(t *testing.T) {
	assert.Equal(t, "", whereClause(nil))
	assert.Equal(t, " WHERE a = $1", whereClause([]string{"a = $1"}))
	assert.Equal(t, " WHERE a = $1 AND b = $2", whereClause([]string{"a = $1", "b = $2"}))
}
