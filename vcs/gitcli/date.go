package gitcli

import (
	"strconv"
	"time"
)

// git %at/%ct timestamps are integer seconds since the epoch.
func parseUnixTimestamp(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0).UTC(), nil
}
