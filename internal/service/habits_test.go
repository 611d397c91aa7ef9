package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianloooooh/accountability-app/internal/errs"
	"github.com/brianloooooh/accountability-app/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const testAvatar = "🙂"

// fakeHabitStore is an in-memory HabitStore. Each method can be
// overridden per test to force failures.
type fakeHabitStore struct {
	nextID  int64
	habits  []model.Habit
	insert  func(ctx context.Context, groupID, userID, name string) (model.Habit, error)
	delete  func(ctx context.Context, id int64) error
	mark    func(ctx context.Context, id int64) error
	listErr error
}

func (f *fakeHabitStore) Insert(ctx context.Context, groupID, userID, name string) (model.Habit, error) {
	if f.insert != nil {
		return f.insert(ctx, groupID, userID, name)
	}

	f.nextID++
	habit := model.Habit{ID: f.nextID, GroupID: groupID, UserID: userID, Name: name}
	f.habits = append(f.habits, habit)
	return habit, nil
}

func (f *fakeHabitStore) Delete(ctx context.Context, id int64) error {
	if f.delete != nil {
		return f.delete(ctx, id)
	}

	for i, h := range f.habits {
		if h.ID == id {
			f.habits = append(f.habits[:i], f.habits[i+1:]...)
			return nil
		}
	}
	// Matching nothing is not an error.
	return nil
}

func (f *fakeHabitStore) MarkComplete(ctx context.Context, id int64) error {
	if f.mark != nil {
		return f.mark(ctx, id)
	}

	for i := range f.habits {
		if f.habits[i].ID == id {
			f.habits[i].Completed = true
		}
	}
	return nil
}

func (f *fakeHabitStore) ListByGroup(ctx context.Context, groupID string) ([]model.Habit, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []model.Habit
	for _, h := range f.habits {
		if h.GroupID == groupID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeGroupStore serves a single fixed group.
type fakeGroupStore struct {
	membership    model.GroupMembership
	membershipErr error
	members       []model.MemberProfile
	membersErr    error
}

func (f *fakeGroupStore) FirstMembership(ctx context.Context, userID string) (model.GroupMembership, error) {
	if f.membershipErr != nil {
		return model.GroupMembership{}, f.membershipErr
	}
	return f.membership, nil
}

func (f *fakeGroupStore) ListMembers(ctx context.Context, groupID string) ([]model.MemberProfile, error) {
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	return f.members, nil
}

func newTestService(habits *fakeHabitStore, groups *fakeGroupStore) *HabitService {
	log := zerolog.Nop()
	return &HabitService{
		log:    &log,
		habits: habits,
		groups: groups,
		avatar: testAvatar,
	}
}

func profileMember(userID, name string) model.MemberProfile {
	return model.MemberProfile{
		UserID:  userID,
		Profile: model.SingleProfile(model.Profile{UserID: userID, DisplayName: name}),
	}
}

// assertCode checks that err is an HTTPError carrying the given code.
func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Code != code {
		t.Errorf("code = %q, want %q", httpErr.Code, code)
	}
}

func TestAddHabitTask(t *testing.T) {
	habits := &fakeHabitStore{}
	groups := &fakeGroupStore{membership: model.GroupMembership{GroupID: "g1", UserID: "u1"}}
	svc := newTestService(habits, groups)

	id, err := svc.AddHabitTask(context.Background(), "u1", "  Morning run  ")
	if err != nil {
		t.Fatalf("AddHabitTask: %v", err)
	}
	if id != "1" {
		t.Errorf("id = %q, want %q", id, "1")
	}

	if len(habits.habits) != 1 {
		t.Fatalf("stored habits = %d, want 1", len(habits.habits))
	}
	if habits.habits[0].Name != "Morning run" {
		t.Errorf("name = %q, want trimmed %q", habits.habits[0].Name, "Morning run")
	}
	if habits.habits[0].Completed {
		t.Error("new habit should start incomplete")
	}
	if habits.habits[0].GroupID != "g1" {
		t.Errorf("group = %q, want membership group %q", habits.habits[0].GroupID, "g1")
	}
}

func TestAddHabitTaskNotAuthenticated(t *testing.T) {
	svc := newTestService(&fakeHabitStore{}, &fakeGroupStore{})

	_, err := svc.AddHabitTask(context.Background(), "", "Run")
	assertCode(t, err, string(errs.TaskAuthError))
}

func TestAddHabitTaskNoGroup(t *testing.T) {
	groups := &fakeGroupStore{membershipErr: pgx.ErrNoRows}
	svc := newTestService(&fakeHabitStore{}, groups)

	_, err := svc.AddHabitTask(context.Background(), "u1", "Run")
	assertCode(t, err, string(errs.GroupNoGroup))
}

func TestAddHabitTaskMembershipFailureIsUnknown(t *testing.T) {
	groups := &fakeGroupStore{membershipErr: errors.New("connection refused")}
	svc := newTestService(&fakeHabitStore{}, groups)

	_, err := svc.AddHabitTask(context.Background(), "u1", "Run")
	assertCode(t, err, string(errs.TaskUnknown))
}

func TestAddHabitTaskInsertFailure(t *testing.T) {
	habits := &fakeHabitStore{
		insert: func(ctx context.Context, groupID, userID, name string) (model.Habit, error) {
			return model.Habit{}, errors.New("boom")
		},
	}
	groups := &fakeGroupStore{membership: model.GroupMembership{GroupID: "g1"}}
	svc := newTestService(habits, groups)

	_, err := svc.AddHabitTask(context.Background(), "u1", "Run")
	assertCode(t, err, string(errs.TaskInsertError))
}

func TestDeleteHabitTask(t *testing.T) {
	habits := &fakeHabitStore{}
	groups := &fakeGroupStore{membership: model.GroupMembership{GroupID: "g1"}}
	svc := newTestService(habits, groups)

	id, err := svc.AddHabitTask(context.Background(), "u1", "Run")
	if err != nil {
		t.Fatalf("AddHabitTask: %v", err)
	}

	if err := svc.DeleteHabitTask(context.Background(), "u1", id); err != nil {
		t.Fatalf("DeleteHabitTask: %v", err)
	}
	if len(habits.habits) != 0 {
		t.Errorf("stored habits = %d, want 0", len(habits.habits))
	}

	// Deleting again (and deleting garbage) still succeeds.
	if err := svc.DeleteHabitTask(context.Background(), "u1", id); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if err := svc.DeleteHabitTask(context.Background(), "u1", "not-a-number"); err != nil {
		t.Errorf("malformed id delete: %v", err)
	}
}

func TestDeleteHabitTaskFailure(t *testing.T) {
	habits := &fakeHabitStore{
		delete: func(ctx context.Context, id int64) error { return errors.New("boom") },
	}
	svc := newTestService(habits, &fakeGroupStore{})

	err := svc.DeleteHabitTask(context.Background(), "u1", "3")
	assertCode(t, err, string(errs.TaskDeleteError))
}

func TestDeleteHabitTaskNotAuthenticated(t *testing.T) {
	svc := newTestService(&fakeHabitStore{}, &fakeGroupStore{})

	err := svc.DeleteHabitTask(context.Background(), "", "3")
	assertCode(t, err, string(errs.TaskAuthError))
}

func TestMarkHabitComplete(t *testing.T) {
	habits := &fakeHabitStore{}
	groups := &fakeGroupStore{membership: model.GroupMembership{GroupID: "g1"}}
	svc := newTestService(habits, groups)

	id, err := svc.AddHabitTask(context.Background(), "u1", "Run")
	if err != nil {
		t.Fatalf("AddHabitTask: %v", err)
	}

	if err := svc.MarkHabitComplete(context.Background(), "u1", id); err != nil {
		t.Fatalf("MarkHabitComplete: %v", err)
	}
	if !habits.habits[0].Completed {
		t.Error("habit should be completed")
	}

	// Completion is monotonic: repeating is a no-op success.
	if err := svc.MarkHabitComplete(context.Background(), "u1", id); err != nil {
		t.Errorf("second complete: %v", err)
	}
	if !habits.habits[0].Completed {
		t.Error("habit should stay completed")
	}
}

func TestMarkHabitCompleteFailure(t *testing.T) {
	habits := &fakeHabitStore{
		mark: func(ctx context.Context, id int64) error { return errors.New("boom") },
	}
	svc := newTestService(habits, &fakeGroupStore{})

	err := svc.MarkHabitComplete(context.Background(), "u1", "3")
	assertCode(t, err, string(errs.TaskUpdateError))
}

func TestGetHabitTasks(t *testing.T) {
	habits := &fakeHabitStore{}
	groups := &fakeGroupStore{
		membership: model.GroupMembership{GroupID: "g1", UserID: "u1"},
		members: []model.MemberProfile{
			profileMember("u2", "Alice"),
			profileMember("u1", "Brian"),
			{UserID: "u3", Profile: model.NoProfile()},
		},
	}
	svc := newTestService(habits, groups)

	if _, err := svc.AddHabitTask(context.Background(), "u1", "Run"); err != nil {
		t.Fatalf("AddHabitTask: %v", err)
	}
	if _, err := svc.AddHabitTask(context.Background(), "u1", "Read"); err != nil {
		t.Fatalf("AddHabitTask: %v", err)
	}

	members, err := svc.GetHabitTasks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetHabitTasks: %v", err)
	}

	if len(members) != 3 {
		t.Fatalf("members = %d, want 3", len(members))
	}

	// Order follows the member fetch, never re-sorted.
	if members[0].ID != "u2" || members[1].ID != "u1" || members[2].ID != "u3" {
		t.Errorf("member order = %s,%s,%s, want u2,u1,u3", members[0].ID, members[1].ID, members[2].ID)
	}

	// The caller's own entry reads "You"; missing profiles read "Unknown".
	if members[0].Name != "Alice" {
		t.Errorf("members[0].Name = %q, want %q", members[0].Name, "Alice")
	}
	if members[1].Name != CallerDisplayName {
		t.Errorf("members[1].Name = %q, want %q", members[1].Name, CallerDisplayName)
	}
	if members[2].Name != model.UnknownDisplayName {
		t.Errorf("members[2].Name = %q, want %q", members[2].Name, model.UnknownDisplayName)
	}

	// Tasks land under their owner, in habit fetch order.
	if len(members[1].Tasks) != 2 {
		t.Fatalf("caller tasks = %d, want 2", len(members[1].Tasks))
	}
	if members[1].Tasks[0].Title != "Run" || members[1].Tasks[1].Title != "Read" {
		t.Errorf("task order = %q,%q, want Run,Read", members[1].Tasks[0].Title, members[1].Tasks[1].Title)
	}

	// Members without tasks get an empty list, not nil.
	if members[0].Tasks == nil {
		t.Error("memberless tasks should be an empty slice, not nil")
	}
	if len(members[0].Tasks) != 0 {
		t.Errorf("members[0] tasks = %d, want 0", len(members[0].Tasks))
	}

	for _, m := range members {
		if m.Avatar != testAvatar {
			t.Errorf("avatar = %q, want placeholder %q", m.Avatar, testAvatar)
		}
		if m.LastCheckin != "" {
			t.Errorf("lastCheckin = %q, want empty", m.LastCheckin)
		}
	}
}

func TestGetHabitTasksListVariantUsesFirstProfile(t *testing.T) {
	groups := &fakeGroupStore{
		membership: model.GroupMembership{GroupID: "g1"},
		members: []model.MemberProfile{
			{
				UserID: "u2",
				Profile: model.ProfileList([]model.Profile{
					{UserID: "u2", DisplayName: "Alice"},
					{UserID: "u2", DisplayName: "Stale"},
				}),
			},
		},
	}
	svc := newTestService(&fakeHabitStore{}, groups)

	members, err := svc.GetHabitTasks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetHabitTasks: %v", err)
	}
	if members[0].Name != "Alice" {
		t.Errorf("name = %q, want first profile %q", members[0].Name, "Alice")
	}
}

func TestGetHabitTasksErrorCodes(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		habits *fakeHabitStore
		groups *fakeGroupStore
		code   string
	}{
		{
			name:   "no membership",
			habits: &fakeHabitStore{},
			groups: &fakeGroupStore{membershipErr: pgx.ErrNoRows},
			code:   string(errs.GroupNoGroup),
		},
		{
			name:   "membership lookup failure",
			habits: &fakeHabitStore{},
			groups: &fakeGroupStore{membershipErr: boom},
			code:   string(errs.GroupFetchError),
		},
		{
			name:   "member fetch failure",
			habits: &fakeHabitStore{},
			groups: &fakeGroupStore{membersErr: boom},
			code:   string(errs.GroupMembersFetchError),
		},
		{
			name:   "habit fetch failure",
			habits: &fakeHabitStore{listErr: boom},
			groups: &fakeGroupStore{},
			code:   string(errs.TaskFetchError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.habits, tt.groups)
			_, err := svc.GetHabitTasks(context.Background(), "u1")
			assertCode(t, err, tt.code)
		})
	}
}

func TestGetHabitTasksNotAuthenticated(t *testing.T) {
	svc := newTestService(&fakeHabitStore{}, &fakeGroupStore{})

	_, err := svc.GetHabitTasks(context.Background(), "")
	assertCode(t, err, string(errs.TaskAuthError))
}
