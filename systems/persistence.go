package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/samsoft/brickrun/config"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	Unlocked int `json:"unlocked"`
	Selected int `json:"selected"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "brickrun",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk, nil when absent
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved progress yet, start fresh
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveProgress writes the current overworld state to disk
func SaveProgress(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	ow := GetOrCreateOverworld(e)
	progress := &SavedProgress{
		Unlocked: ow.Unlocked,
		Selected: ow.Selected,
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// ApplySavedProgress applies loaded progress to the overworld state
func ApplySavedProgress(e *ecs.ECS, saved *SavedProgress) {
	if saved == nil {
		return
	}

	ow := GetOrCreateOverworld(e)
	if saved.Unlocked > ow.Unlocked {
		ow.Unlocked = saved.Unlocked
	}
	if ow.Unlocked > cfg.Level.TotalLevels {
		ow.Unlocked = cfg.Level.TotalLevels
	}
	// The cursor never rests on a locked node.
	if saved.Selected >= 0 && saved.Selected < ow.Unlocked {
		ow.Selected = saved.Selected
	}
}

// UnlockLevel marks a level as beaten, opening the next one, and persists
// the result. Each scene owns its own donburi world, so the disk copy is
// merged in first; beating an early level again must not re-lock later ones.
func UnlockLevel(e *ecs.ECS, level int) {
	ow := GetOrCreateOverworld(e)
	if saved, err := LoadProgress(); err == nil && saved != nil && saved.Unlocked > ow.Unlocked {
		ow.Unlocked = saved.Unlocked
	}

	next := level + 1
	if next > cfg.Level.TotalLevels {
		next = cfg.Level.TotalLevels
	}
	if next > ow.Unlocked {
		ow.Unlocked = next
	}
	ow.Selected = next - 1
	SaveProgress(e)
}
