package pdf

import (
	"testing"
	"time"

	"stolarija-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "prvi\ndrugi", stripTags("<p>prvi</p><p>drugi</p>"))
	assert.Equal(t, "prvi\ndrugi", stripTags("prvi<br>drugi"))
	assert.Equal(t, "prvi\ndrugi", stripTags("prvi<br />drugi"))
	assert.Equal(t, "bitno", stripTags("<b>bitno</b>"))
	assert.Equal(t, "a & b", stripTags("a &amp; b"))
	assert.Equal(t, "a < b", stripTags("a &lt; b"))
	assert.Equal(t, "", stripTags("  <p></p> "))
}

func TestLeaveDocumentNumber(t *testing.T) {
	// broj se veže uz godinu početka odmora, ne uz tekuću godinu
	req := &models.LeaveRequest{
		ID:        42,
		StartDate: time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "ZG-2026/0042", LeaveDocumentNumber(req))
}
