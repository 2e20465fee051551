// Package fixtures holds the demo data set: the fixed user registry, the
// company table, and the seed task list. Everything here is constructed
// fresh per call so callers can mutate their copies freely.
package fixtures

import "github.com/kalistajoy/crm-workspace/internal/model"

// Registry keys for looking up well-known demo users.
const (
	UserPhil      = "Phil Schiller"
	UserCraig     = "Craig Federighi"
	UserEddy      = "Eddy Cue"
	UserKatherine = "Katherine Adams"
	UserTim       = "Tim Cook"
	UserJeff      = "Jeff Williams"
	UserSteve     = "Steve Anavi"
	UserAlex      = "Alex Schiller"
	UserSofia     = "Sofia Martinez"
	UserKalista   = "Kalista Joy"
)

// InboxTaskID identifies the seeded pricing-confirmation task.
const InboxTaskID = "task-target"

// Users returns the fixed user registry in stable order.
func Users() []model.User {
	return []model.User{
		{Name: UserPhil, Avatar: "https://picsum.photos/id/1/32/32"},
		{Name: UserCraig, Avatar: "https://picsum.photos/id/2/32/32"},
		{Name: UserEddy, Avatar: "https://picsum.photos/id/3/32/32"},
		{Name: UserKatherine, Avatar: "https://picsum.photos/id/4/32/32"},
		{Name: UserTim, Avatar: "https://picsum.photos/id/5/32/32"},
		{Name: UserJeff, Avatar: "https://picsum.photos/id/6/32/32"},
		{Name: UserSteve, Avatar: "https://picsum.photos/id/7/32/32"},
		{Name: UserAlex, Avatar: "https://picsum.photos/id/9/32/32"},
		{Name: UserSofia, Avatar: "https://picsum.photos/id/10/32/32"},
		{Name: UserKalista, Avatar: "https://picsum.photos/id/11/32/32"},
	}
}

// UserByName looks a user up in the registry. The second return is false
// when no such user exists.
func UserByName(name string) (model.User, bool) {
	for _, u := range Users() {
		if u.Name == name {
			return u, true
		}
	}
	return model.User{}, false
}

func mustUser(name string) model.User {
	u, ok := UserByName(name)
	if !ok {
		panic("fixtures: unknown user " + name)
	}
	return u
}

// Companies returns the fixed company table in stable order.
func Companies() []model.Company {
	return []model.Company{
		{ID: "1", Name: "Anthropic", Icon: "https://logo.clearbit.com/anthropic.com", URL: "anthropic.com", CreatedBy: mustUser(UserJeff), Address: "18 Rue De Navarin", AccountOwner: mustUser(UserPhil), IsICP: true, ARR: "$500,000", Linkedin: "anthropic"},
		{ID: "2", Name: "Linkedin", Icon: "https://logo.clearbit.com/linkedin.com", URL: "linkedin.com", CreatedBy: mustUser(UserCraig), Address: "1226 Moises Causeway", AccountOwner: mustUser(UserCraig), IsICP: false, ARR: "$1,000,000", Linkedin: "linkedin"},
		{ID: "target", Name: "Target", Icon: "https://logo.clearbit.com/target.com", URL: "target.com", CreatedBy: model.User{}, Address: "1000 Nicollet Mall", AccountOwner: mustUser(UserTim), IsICP: true, ARR: "$50,000,000", Linkedin: "target"},
		{ID: "3", Name: "Slack", Icon: "https://logo.clearbit.com/slack.com", URL: "slack.com", CreatedBy: mustUser(UserEddy), Address: "1316 Dameon Mount", AccountOwner: mustUser(UserKatherine), IsICP: true, ARR: "$2,300,000", Linkedin: "slack"},
		{ID: "4", Name: "Notion", Icon: "https://logo.clearbit.com/notion.com", URL: "notion.com", CreatedBy: model.User{}, Address: "1162 Sammy Creek", AccountOwner: mustUser(UserPhil), IsICP: false, ARR: "$750,000", Linkedin: "notion"},
		{ID: "5", Name: "Figma", Icon: "https://logo.clearbit.com/figma.com", URL: "figma.com", CreatedBy: model.User{}, Address: "110 Oswald Junction", AccountOwner: mustUser(UserTim), IsICP: true, ARR: "$3,500,000", Linkedin: "figma"},
		{ID: "6", Name: "Github", Icon: "https://logo.clearbit.com/github.com", URL: "github.com", CreatedBy: mustUser(UserJeff), Address: "3891 Ranchview Dr", AccountOwner: mustUser(UserJeff), IsICP: true, ARR: "$900,000", Linkedin: "github"},
		{ID: "7", Name: "Airbnb", Icon: "https://logo.clearbit.com/airbnb.com", URL: "airbnb.com", CreatedBy: mustUser(UserTim), Address: "4517 Washington Ave", AccountOwner: mustUser(UserEddy), IsICP: true, ARR: "$4,200,000", Linkedin: "airbnb"},
		{ID: "8", Name: "Stripe", Icon: "https://logo.clearbit.com/stripe.com", URL: "stripe.com", CreatedBy: mustUser(UserKatherine), Address: "2118 Thornridge Cir", AccountOwner: mustUser(UserTim), IsICP: true, ARR: "$1,800,000", Linkedin: "stripe"},
		{ID: "9", Name: "Sequoia", Icon: "https://logo.clearbit.com/sequoiacap.com", URL: "sequoia.com", CreatedBy: mustUser(UserPhil), Address: "1316 Dameon Mount", AccountOwner: mustUser(UserPhil), IsICP: false, ARR: "$6,000,000", Linkedin: "sequoia"},
		{ID: "10", Name: "Segment", Icon: "https://logo.clearbit.com/segment.com", URL: "segment.com", CreatedBy: mustUser(UserPhil), Address: "8502 Preston Rd", AccountOwner: mustUser(UserEddy), IsICP: true, ARR: "$2,750,000", Linkedin: "segment"},
	}
}

// CompanyByID looks a company up in the table.
func CompanyByID(id string) (model.Company, bool) {
	for _, c := range Companies() {
		if c.ID == id {
			return c, true
		}
	}
	return model.Company{}, false
}

// SeedTasks returns the seed task list in insertion order. The pricing
// confirmation task for Target is the one the workflow demo revolves
// around; the rest populate the notifications inbox.
func SeedTasks() []model.Task {
	alex := mustUser(UserAlex)
	sofia := mustUser(UserSofia)
	kalista := mustUser(UserKalista)
	tim := mustUser(UserTim)

	return []model.Task{
		{
			ID:              InboxTaskID,
			Title:           "Send pricing confirmation",
			Description:     "Incoming email asking to confirm pricing structure and volume discounts for Q1 budget approval.",
			RelatedRecord:   "Target",
			RelatedRecordID: "target",
			AssignedTo:      &alex,
			Status:          model.StatusToDo,
			Type:            model.TypeEmail,
			AssignedBy:      model.BySystem(),
		},
		{
			ID:                "task-anthropic-renewal",
			Title:             "Prepare Q2 renewal proposal",
			Description:       "Contract renews at the end of the quarter; pull usage numbers and draft the proposal.",
			RelatedRecord:     "Anthropic",
			RelatedRecordID:   "1",
			AssignedTo:        &alex,
			Status:            model.StatusToDo,
			DueDate:           "Mar 28",
			Type:              model.TypeRenewal,
			AssignedBy:        model.ByUser(tim),
			CreatedAtRelative: "2 hours ago",
		},
		{
			ID:                "task-slack-mention",
			Title:             "Katherine mentioned you on Slack",
			Description:       "Thread about the security questionnaire due next week.",
			RelatedRecord:     "Slack",
			RelatedRecordID:   "3",
			AssignedTo:        &alex,
			Status:            model.StatusInProgress,
			Type:              model.TypeMention,
			AssignedBy:        model.BySystem(),
			CreatedAtRelative: "4 hours ago",
		},
		{
			ID:                "task-stripe-approval",
			Title:             "Approve discount for Stripe expansion",
			Description:       "Sofia requested sign-off on a 12% expansion discount.",
			RelatedRecord:     "Stripe",
			RelatedRecordID:   "8",
			AssignedTo:        &kalista,
			Status:            model.StatusInReview,
			DueDate:           "Mar 21",
			Type:              model.TypeApproval,
			AssignedBy:        model.ByUser(sofia),
			CreatedAtRelative: "yesterday",
		},
		{
			ID:                "task-figma-followup",
			Title:             "Follow up on onboarding email",
			Description:       "No reply from the champion in five days; send a short nudge.",
			RelatedRecord:     "Figma",
			RelatedRecordID:   "5",
			AssignedTo:        &sofia,
			Status:            model.StatusToDo,
			Type:              model.TypeEmail,
			AssignedBy:        model.BySystem(),
			CreatedAtRelative: "yesterday",
		},
		{
			ID:                "task-github-done",
			Title:             "Close out usage review",
			Description:       "Annual usage review signed off by the account team.",
			RelatedRecord:     "Github",
			RelatedRecordID:   "6",
			AssignedTo:        &kalista,
			Status:            model.StatusDone,
			Type:              model.TypeApproval,
			AssignedBy:        model.ByUser(alex),
			CreatedAtRelative: "3 days ago",
		},
	}
}
