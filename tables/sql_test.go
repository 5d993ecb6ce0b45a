package tables

import (
	"testing"

	"gotest.tools/assert"
)

func Test_ReadSQL(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	assert.NilError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE bookings (hotel TEXT, lead_time INTEGER, is_canceled INTEGER)`)
	assert.NilError(t, err)
	_, err = db.Exec(`INSERT INTO bookings VALUES ('City', 5, 1), ('Resort', NULL, 0)`)
	assert.NilError(t, err)

	q, err := ReadSQL(db, `SELECT * FROM bookings ORDER BY hotel`)
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 2)
	assert.DeepEqual(t, q.Col("hotel"), []string{"City", "Resort"})
	// SQL NULL comes out as a missing cell
	assert.Assert(t, IsMissing(q.Col("lead_time")[1]))
	assert.DeepEqual(t, q.Col("is_canceled"), []string{"1", "0"})
}
