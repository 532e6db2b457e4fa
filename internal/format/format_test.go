package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIndianGroups(t *testing.T) {
	t.Run("three digits or fewer stay ungrouped", func(t *testing.T) {
		assert.Equal(t, "0", IndianGroups("0"))
		assert.Equal(t, "7", IndianGroups("7"))
		assert.Equal(t, "999", IndianGroups("999"))
	})

	t.Run("last three digits form the rightmost group", func(t *testing.T) {
		assert.Equal(t, "1,000", IndianGroups("1000"))
		assert.Equal(t, "4,500", IndianGroups("4500"))
		assert.Equal(t, "9,999", IndianGroups("9999"))
		assert.Equal(t, "12,345", IndianGroups("12345"))
		assert.Equal(t, "1,00,000", IndianGroups("100000"))
		assert.Equal(t, "12,34,567", IndianGroups("1234567"))
		assert.Equal(t, "1,23,45,678", IndianGroups("12345678"))
	})

	t.Run("sign is preserved", func(t *testing.T) {
		assert.Equal(t, "-500", IndianGroups("-500"))
		assert.Equal(t, "-1,234", IndianGroups("-1234"))
		assert.Equal(t, "1,234", IndianGroups("+1234"))
	})

	t.Run("decimal part is preserved unchanged", func(t *testing.T) {
		assert.Equal(t, "1,000.25", IndianGroups("1000.25"))
		assert.Equal(t, "1,00,000.5", IndianGroups("100000.5"))
		assert.Equal(t, "999.99", IndianGroups("999.99"))
		assert.Equal(t, "-12,34,567.00", IndianGroups("-1234567.00"))
	})

	t.Run("empty input formats as zero", func(t *testing.T) {
		assert.Equal(t, "0", IndianGroups(""))
		assert.Equal(t, "0", IndianGroups("   "))
	})
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "12,34,567", Amount(decimal.NewFromInt(1234567)))
	assert.Equal(t, "0", Amount(decimal.Zero))
}

func TestNullAmount(t *testing.T) {
	t.Run("null formats as zero", func(t *testing.T) {
		assert.Equal(t, "0", NullAmount(decimal.NullDecimal{}))
	})

	t.Run("valid value is grouped", func(t *testing.T) {
		n := decimal.NullDecimal{Decimal: decimal.NewFromInt(100000), Valid: true}
		assert.Equal(t, "1,00,000", NullAmount(n))
	})
}

func TestDisplayDate(t *testing.T) {
	t.Run("ISO dates", func(t *testing.T) {
		assert.Equal(t, "15 Aug 2025", DisplayDate("2025-08-15", KindISO))
		assert.Equal(t, "15 Aug 2025", DisplayDate("2025-08-15T10:30:00Z", KindISO))
	})

	t.Run("dash-delimited day-month-year dates", func(t *testing.T) {
		assert.Equal(t, "15 Aug 2025", DisplayDate("15-08-2025", KindDMY))
	})

	t.Run("unparseable input formats as N/A", func(t *testing.T) {
		assert.Equal(t, "N/A", DisplayDate("", KindISO))
		assert.Equal(t, "N/A", DisplayDate("not-a-date", KindISO))
		assert.Equal(t, "N/A", DisplayDate("2025-08-15", KindDMY))
		assert.Equal(t, "N/A", DisplayDate("32-01-2025", KindDMY))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("ISO with time suffix", func(t *testing.T) {
		parsed, err := ParseDate("2024-01-02T00:00:00.000Z", KindISO)
		assert.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, 2, parsed.Day())
	})

	t.Run("DMY segments are not reordered as ISO", func(t *testing.T) {
		parsed, err := ParseDate("02-01-2024", KindDMY)
		assert.NoError(t, err)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, 2, parsed.Day())
	})
}
