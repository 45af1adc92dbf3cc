package cli

import (
	"context"
	"strings"
)

var onboardingSteps = []string{
	"1. Add the feedback widget snippet to the pages you want to collect feedback on.",
	"2. Create your first survey from the dashboard.",
	"3. Invite teammates so they can triage incoming feedback.",
}

// Onboard walks the signed-in user through onboarding and records its
// completion. Declining leaves the gate in place.
func (a *App) Onboard(ctx context.Context) error {
	m, err := a.sessionFrom(ctx)
	if err != nil {
		return err
	}

	st := m.State()
	switch {
	case st.User == nil:
		a.println("Not signed in.")
		return nil
	case !st.NeedsOnboarding:
		a.println("Onboarding is already complete.")
		return nil
	}

	a.printf("Welcome to %s's workspace, %s!\n", st.User.Company, st.User.Name)
	for _, step := range onboardingSteps {
		a.println(step)
	}

	answer, err := getSimpleText(a.reader, "Mark onboarding as complete? [Y/n]", a.out)
	if err != nil {
		return err
	}
	if isNo(answer) {
		a.println("Onboarding postponed. Type 'onboard' when you are ready.")
		return nil
	}

	m.CompleteOnboarding(ctx)
	a.println("Onboarding complete.")
	return nil
}

func isNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return true
	}
	return false
}
