package repositories

import (
	"context"
	"testing"

	"hit4power/clubhouse/internal/models"
)

func TestAssignAllowsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDrillRepository(db)
	ctx := context.Background()

	instructor := createInstructor(t, db, "Coach", "H4P001")
	player := createPlayer(t, db, "Alice", "123456")

	drill := models.Drill{
		Title:                "Tee work",
		Filename:             "d1_1700000000_tee.mp4",
		UploaderInstructorID: instructor.ID,
	}
	if err := repo.Create(ctx, &drill); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Assign(ctx, player.ID, drill.ID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if err := repo.Assign(ctx, player.ID, drill.ID); err != nil {
		t.Fatalf("second Assign failed: %v", err)
	}

	rows, err := repo.GetAssignedForPlayer(ctx, player.ID)
	if err != nil {
		t.Fatalf("GetAssignedForPlayer failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Drill.Title != "Tee work" {
			t.Errorf("unexpected drill in row: %+v", row.Drill)
		}
	}
}

func TestGetSharedForPlayerFiltersPrivateNotes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	instructor := createInstructor(t, db, "Coach", "H4P001")
	player := createPlayer(t, db, "Alice", "123456")

	private := models.CoachNote{PlayerID: player.ID, InstructorID: instructor.ID, Content: "needs work on timing"}
	shared := models.CoachNote{PlayerID: player.ID, InstructorID: instructor.ID, Content: "great progress", SharedToPlayer: true}
	if err := repo.Create(ctx, &private); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, &shared); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := repo.GetForPlayer(ctx, player.ID)
	if err != nil {
		t.Fatalf("GetForPlayer failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 notes for the instructor view, got %d", len(all))
	}

	visible, err := repo.GetSharedForPlayer(ctx, player.ID)
	if err != nil {
		t.Fatalf("GetSharedForPlayer failed: %v", err)
	}
	if len(visible) != 1 || visible[0].Content != "great progress" {
		t.Fatalf("expected only the shared note, got %+v", visible)
	}
}
