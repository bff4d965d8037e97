package claim

import (
	"strings"

	"github.com/example/giftwell/internal/models"
)

// Message is the title/body pair shown at the top of the claim page.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

const firstNamePlaceholder = "{{first-name}}"

type messageKey struct {
	motion     string
	singleGift bool
}

var messageTable = map[messageKey]Message{
	{models.MotionBoostRegistration, true}: {
		Title: "Hey {{first-name}}, a surprise is waiting for you!",
		Body:  "Register for the event and we'll ship this gift straight to your door. Just confirm where you'd like it sent.",
	},
	{models.MotionBoostRegistration, false}: {
		Title: "Hey {{first-name}}, pick a gift on us!",
		Body:  "Register for the event and choose the gift you'd like. We'll take care of the shipping.",
	},
	{models.MotionBookMeeting, true}: {
		Title: "{{first-name}}, thanks for making time for us!",
		Body:  "We picked out a little something to say thanks for the meeting. Tell us where to send it.",
	},
	{models.MotionBookMeeting, false}: {
		Title: "{{first-name}}, thanks for making time for us!",
		Body:  "Choose whichever gift you like as a thank-you for the meeting, and tell us where to send it.",
	},
	{models.MotionDriveAttendance, true}: {
		Title: "See you there, {{first-name}}!",
		Body:  "We're sending you a gift ahead of the big day. Confirm your address and it's on its way.",
	},
	{models.MotionDriveAttendance, false}: {
		Title: "See you there, {{first-name}}!",
		Body:  "Pick a gift to enjoy ahead of the big day. Confirm your address and it's on its way.",
	},
	{models.MotionSayThanks, true}: {
		Title: "{{first-name}}, this one's on us.",
		Body:  "A small thank-you for everything. Let us know where to ship it.",
	},
	{models.MotionSayThanks, false}: {
		Title: "{{first-name}}, this one's on us.",
		Body:  "A small thank-you for everything. Pick your favorite and let us know where to ship it.",
	},
}

var genericMessage = Message{
	Title: "A gift for you, {{first-name}}!",
	Body:  "Someone wanted to say thank you. Claim your gift below and we'll handle the rest.",
}

// ResolveMessage picks the title/body pair for a campaign motion and gift
// count, substituting the recipient's first name ("there" when absent).
// Unknown motions fall back to the generic template; this never fails.
func ResolveMessage(motion string, singleGift bool, firstName string) Message {
	msg, ok := messageTable[messageKey{motion, singleGift}]
	if !ok {
		msg = genericMessage
	}

	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "there"
	}

	msg.Title = strings.ReplaceAll(msg.Title, firstNamePlaceholder, name)
	msg.Body = strings.ReplaceAll(msg.Body, firstNamePlaceholder, name)
	return msg
}
