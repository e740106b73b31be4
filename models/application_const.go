package models

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusPhoneScreen ApplicationStatus = "Phone Screen"
	StatusTechnical   ApplicationStatus = "Technical"
	StatusOffer       ApplicationStatus = "Offer"
	StatusRejected    ApplicationStatus = "Rejected"
)

type ApplicationPriority string

const (
	PriorityLow    ApplicationPriority = "Low"
	PriorityMedium ApplicationPriority = "Medium"
	PriorityHigh   ApplicationPriority = "High"
)

var knownStatuses = map[ApplicationStatus]bool{
	StatusApplied:     true,
	StatusPhoneScreen: true,
	StatusTechnical:   true,
	StatusOffer:       true,
	StatusRejected:    true,
}

func (s ApplicationStatus) IsKnown() bool {
	return knownStatuses[s]
}

// NormalizeStatus возвращает колонку доски для статуса.
// Неизвестные значения не отклоняются при записи, но на доске попадают в колонку "Applied".
func NormalizeStatus(status ApplicationStatus) ApplicationStatus {
	if status.IsKnown() {
		return status
	}
	return StatusApplied
}

type ActivityEventType string

const (
	ActivityEventCreated      ActivityEventType = "Created"
	ActivityEventStatusChange ActivityEventType = "Status Change"
)
