package metrics

// IncrementGroupCreated increments group creation counter
func (m *Metrics) IncrementGroupCreated() {
	m.safeExecute("IncrementGroupCreated", func() {
		m.GroupCreatedTotal.Inc()
	})
}

// IncrementRecordCreated increments record creation counter
func (m *Metrics) IncrementRecordCreated() {
	m.safeExecute("IncrementRecordCreated", func() {
		m.RecordCreatedTotal.Inc()
	})
}

// IncrementLikeEvent increments the like event counter by direction
func (m *Metrics) IncrementLikeEvent(increment bool) {
	m.safeExecute("IncrementLikeEvent", func() {
		direction := "down"
		if increment {
			direction = "up"
		}
		m.LikeEventsTotal.WithLabelValues(direction).Inc()
	})
}

// IncrementBadgeWrite increments the badge write counter
func (m *Metrics) IncrementBadgeWrite() {
	m.safeExecute("IncrementBadgeWrite", func() {
		m.BadgeWritesTotal.Inc()
	})
}

// SetGroupsTotal sets total groups gauge
func (m *Metrics) SetGroupsTotal(count int64) {
	m.safeExecute("SetGroupsTotal", func() {
		m.GroupsTotal.Set(float64(count))
	})
}

// SetParticipantsTotal sets total participants gauge
func (m *Metrics) SetParticipantsTotal(count int64) {
	m.safeExecute("SetParticipantsTotal", func() {
		m.ParticipantsTotal.Set(float64(count))
	})
}

// SetRecordsTotal sets total records gauge
func (m *Metrics) SetRecordsTotal(count int64) {
	m.safeExecute("SetRecordsTotal", func() {
		m.RecordsTotal.Set(float64(count))
	})
}
