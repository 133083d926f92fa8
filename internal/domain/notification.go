package domain

type NotificationKind string

const (
	NotificationOrderPlaced          NotificationKind = "order_placed"
	NotificationQuestionSubmitted    NotificationKind = "question_submitted"
	NotificationNewsletterSubscribed NotificationKind = "newsletter_subscribed"
)

// Notification is an outcome the presentation layer shows to the shopper.
type Notification struct {
	Kind    NotificationKind
	Message string
}
