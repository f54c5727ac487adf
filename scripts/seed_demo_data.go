package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"feature-flag-backend/internal/config"
	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/database/models"
	"feature-flag-backend/internal/rollout"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type WorkspaceData struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Region string `yaml:"region,omitempty"`
}

type FeatureFlagData struct {
	Name              string   `yaml:"name"`
	Team              string   `yaml:"team"`
	Description       string   `yaml:"description,omitempty"`
	RolloutPercentage int      `yaml:"rollout_percentage"`
	Regions           []string `yaml:"regions,omitempty"`
}

// File structures
type WorkspacesFile struct {
	Workspaces []WorkspaceData `yaml:"workspaces"`
}

type FeatureFlagsFile struct {
	FeatureFlags []FeatureFlagData `yaml:"feature_flags"`
}

func main() {
	log.Println("Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging (SQL queries, "record not found") during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	workspaces, err := loadWorkspaces(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	flags, err := loadFeatureFlags(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load feature flags: %w", err)
	}

	// Create workspaces first so flags can seed their associations
	wsCreated := 0
	var allWorkspaces []models.Workspace
	for _, wsData := range workspaces {
		ws, created, err := createWorkspace(db, wsData)
		if err != nil {
			return fmt.Errorf("failed to create workspace %s: %w", wsData.Name, err)
		}
		allWorkspaces = append(allWorkspaces, *ws)
		if created {
			wsCreated++
		}
	}
	log.Printf("Workspaces: %d created, %d total", wsCreated, len(workspaces))

	flagCreated := 0
	for _, flagData := range flags {
		created, err := createFeatureFlag(db, flagData, allWorkspaces)
		if err != nil {
			return fmt.Errorf("failed to create feature flag %s: %w", flagData.Name, err)
		}
		if created {
			flagCreated++
		}
	}
	log.Printf("Feature flags: %d created, %d total", flagCreated, len(flags))

	return nil
}

func loadWorkspaces(dataDir string) ([]WorkspaceData, error) {
	var file WorkspacesFile
	if err := readYAML(filepath.Join(dataDir, "workspaces.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Workspaces, nil
}

func loadFeatureFlags(dataDir string) ([]FeatureFlagData, error) {
	var file FeatureFlagsFile
	if err := readYAML(filepath.Join(dataDir, "feature_flags.yaml"), &file); err != nil {
		return nil, err
	}
	return file.FeatureFlags, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createWorkspace(db *gorm.DB, data WorkspaceData) (*models.Workspace, bool, error) {
	var existing models.Workspace
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	ws := models.Workspace{
		Name: data.Name,
		Type: data.Type,
	}
	if data.Region != "" {
		region := data.Region
		ws.Region = &region
	}
	if err := db.Create(&ws).Error; err != nil {
		return nil, false, err
	}
	return &ws, true, nil
}

func createFeatureFlag(db *gorm.DB, data FeatureFlagData, workspaces []models.Workspace) (bool, error) {
	var existing models.FeatureFlag
	err := db.Where("team = ? AND name = ?", data.Team, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	regions := data.Regions
	if len(regions) == 0 {
		regions = []string{models.RegionAll}
	}

	flag := models.FeatureFlag{
		Name:              data.Name,
		Team:              data.Team,
		Description:       data.Description,
		RolloutPercentage: data.RolloutPercentage,
		Regions:           datatypes.NewJSONSlice(regions),
	}
	if err := db.Create(&flag).Error; err != nil {
		return false, err
	}

	// Seed one disabled association per workspace, then let the bucketing
	// decide which ones come on at the configured percentage
	associations := make([]models.WorkspaceFeatureFlagAssociation, 0, len(workspaces))
	for _, ws := range workspaces {
		associations = append(associations, models.WorkspaceFeatureFlagAssociation{
			FeatureFlagID: flag.ID,
			WorkspaceID:   ws.ID,
			Enabled:       false,
		})
	}
	if len(associations) > 0 {
		if err := db.Create(&associations).Error; err != nil {
			return false, err
		}
	}

	scope := flag.RegionScope()
	inScope := func(ws *models.Workspace) bool {
		if scope == nil {
			return true
		}
		if ws.Region == nil {
			return false
		}
		for _, r := range scope {
			if r == *ws.Region {
				return true
			}
		}
		return false
	}

	if flag.RolloutPercentage > 0 {
		for i := range associations {
			var ws *models.Workspace
			for j := range workspaces {
				if workspaces[j].ID == associations[i].WorkspaceID {
					ws = &workspaces[j]
					break
				}
			}
			if ws == nil || !inScope(ws) {
				continue
			}
			if flag.RolloutPercentage == 100 || rollout.Bucket(flag.ID, ws.ID) < flag.RolloutPercentage {
				if err := db.Model(&models.WorkspaceFeatureFlagAssociation{}).
					Where("id = ?", associations[i].ID).
					Update("enabled", true).Error; err != nil {
					return false, err
				}
			}
		}
	}

	return true, nil
}
