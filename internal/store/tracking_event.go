package store

import (
	"context"
	"fmt"
)

const sqlCountTrackingEventsByIP = `
SELECT COUNT(*)
FROM tracking_events
WHERE ip_address = $1 AND event_type = $2
`

// CountTrackingEventsByIP counts logged events of one type from an IP address
func (s *Store) CountTrackingEventsByIP(ctx context.Context, ipAddress, eventType string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountTrackingEventsByIP, ipAddress, eventType)
	if err != nil {
		s.logger.Error(ctx, "failed to count tracking events by ip", err)
		return 0, fmt.Errorf("failed to count tracking events by ip: %w", err)
	}
	return count, nil
}
