package query

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	type args struct {
		offset int
		limit  int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"bounded", args{offset: 5, limit: 10}, "SELECT a FROM t LIMIT 10 OFFSET 5"},
		{"first page", args{offset: 0, limit: 1000}, "SELECT a FROM t LIMIT 1000 OFFSET 0"},
		{"zero limit", args{offset: 0, limit: 0}, "SELECT a FROM t LIMIT 0 OFFSET 0"},
		{"unbounded", args{offset: 0, limit: -1}, "SELECT a FROM t"},
		{"negative offset", args{offset: -1, limit: 10}, "SELECT a FROM t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Paginate(sq.Select("a").From("t"), tt.args.offset, tt.args.limit).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilder_Table(t *testing.T) {
	b := New(MySQL, "GDN_")
	assert.Equal(t, "GDN_User", b.Table("User"))
	assert.Equal(t, "GDN_User AS u", b.From("User", "u"))
	assert.Equal(t, "xyz_Comment", New(nil, "xyz_").Table("Comment"))
}

func TestBuilder_Media(t *testing.T) {
	tests := []struct {
		name     string
		d        Dialect
		images   bool
		table    string
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:   "mysql images",
			d:      MySQL,
			images: true,
			table:  ForeignDiscussion,
			wantSQL: []string{
				"(SELECT GROUP_CONCAT(CONCAT('/uploads/files', media.Path)) FROM GDN_Media AS media",
				"media.ForeignID = d.DiscussionID",
				"media.Type LIKE ?",
				"media.ForeignTable = ?",
				") AS images",
			},
			wantArgs: []any{"image%", "discussion"},
		},
		{
			name:   "sqlite attachments",
			d:      SQLite,
			images: false,
			table:  ForeignComment,
			wantSQL: []string{
				"group_concat(('/uploads/files' || media.Path))",
				"media.Type NOT LIKE ?",
				") AS images",
			},
			wantArgs: []any{"image%", "comment"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.d, "GDN_")
			got, args, err := b.Media("d.DiscussionID", tt.table, tt.images, "images").ToSql()
			require.NoError(t, err)
			for _, want := range tt.wantSQL {
				assert.Contains(t, got, want)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuilder_UserMeta(t *testing.T) {
	b := New(MySQL, "GDN_")
	got, args, err := b.Select("u.UserID").
		Column(b.UserMeta("u.UserID", "Profile.Website", "website")).
		From(b.From("User", "u")).
		ToSql()
	require.NoError(t, err)
	assert.Contains(t, got, "(SELECT um.Value FROM GDN_UserMeta AS um WHERE um.UserID = u.UserID AND um.Name = ?) AS website")
	assert.Equal(t, []any{"Profile.Website"}, args)
}

func TestForDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"mysql", DriverMySQL},
		{"sqlite", DriverSQLite},
		{"sqlite3", DriverSQLite},
		{"SQLite", DriverSQLite},
		{"", DriverMySQL},
		{"postgres", DriverMySQL},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			assert.Equal(t, tt.want, ForDriver(tt.driver).Name())
		})
	}
}

func TestDialects(t *testing.T) {
	assert.Equal(t, "UNIX_TIMESTAMP(u.DateFirstVisit)", MySQL.UnixTime("u.DateFirstVisit"))
	assert.Equal(t, "CAST(strftime('%s', u.DateFirstVisit) AS INTEGER)", SQLite.UnixTime("u.DateFirstVisit"))
	assert.Equal(t, "IF(u.Admin = 1, 'administrator', '')", MySQL.If("u.Admin = 1", "'administrator'", "''"))
	assert.Equal(t, "CASE WHEN u.Admin = 1 THEN 'administrator' ELSE '' END", SQLite.If("u.Admin = 1", "'administrator'", "''"))
	assert.Equal(t, "CONCAT('a', b)", MySQL.Concat("'a'", "b"))
	assert.Equal(t, "('a' || b)", SQLite.Concat("'a'", "b"))
	assert.Equal(t, "DATE_FORMAT(d, '%m/%d/%Y')", MySQL.DateMDY("d"))
}
