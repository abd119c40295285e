package cli

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/iudanet/medkeeper/internal/models"
)

var expiryParser = newExpiryParser()

func newExpiryParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// "in 6 months", "in a year", "in 3 weeks"
var relativeExpiry = regexp.MustCompile(`(?i)^in\s+(\d+|a|an|one)\s+(day|week|month|year)s?$`)

// normalizeExpiry приводит ввод пользователя к YYYY-MM-DD.
// YYYY-MM-DD и YYYY-MM остаются как есть; фразы вроде "in 6 months"
// вычисляются от now; нераспознанный ввод и даты не позже now
// сохраняются без изменений и отбрасываются при выгрузке.
func normalizeExpiry(input string, now time.Time) string {
	s := strings.TrimSpace(input)
	if s == "" || models.ValidExpiry(s) {
		return s
	}

	if m := relativeExpiry.FindStringSubmatch(s); m != nil {
		t, ok := addRelative(now, m[1], strings.ToLower(m[2]))
		if !ok || !t.After(now) || t.Year() > 9999 {
			return s
		}
		return t.Format(models.ExpiryDayLayout)
	}

	// when сдвигает месяц без переноса года, поэтому "in N months"
	// разбирается выше, а сюда попадают остальные фразы
	r, err := expiryParser.Parse(s, now)
	if err != nil || r == nil || !r.Time.After(now) {
		return s
	}
	return r.Time.Format(models.ExpiryDayLayout)
}

func addRelative(now time.Time, count, unit string) (time.Time, bool) {
	n := 1
	if count[0] >= '0' && count[0] <= '9' {
		v, err := strconv.Atoi(count)
		if err != nil || v < 1 {
			return time.Time{}, false
		}
		n = v
	}

	switch unit {
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return addMonths(now, n), true
	default:
		return addMonths(now, 12*n), true
	}
}

// addMonths не перескакивает через короткий месяц: 31 августа + 6 месяцев = 28 февраля
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	last := target.AddDate(0, 1, -1).Day()
	day := min(t.Day(), last)
	return target.AddDate(0, 0, day-1)
}
