package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"team-management-backend/internal/config"
	"team-management-backend/internal/database"
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name    string       `yaml:"name"`
	Icon    string       `yaml:"icon,omitempty"`
	IconKey string       `yaml:"icon_key,omitempty"`
	Members []MemberData `yaml:"members"`
}

type MemberData struct {
	UserID      string   `yaml:"user_id"`
	Owner       bool     `yaml:"owner,omitempty"`
	Permissions []string `yaml:"permissions,omitempty"`
}

type ConnectionData struct {
	FromUserID string `yaml:"from_user_id"`
	ToUserID   string `yaml:"to_user_id"`
	Status     string `yaml:"status,omitempty"`
	Mutual     bool   `yaml:"mutual,omitempty"`
}

type ConversationData struct {
	TeamName       string   `yaml:"team_name"`
	ConversationID string   `yaml:"conversation_id"`
	Managed        bool     `yaml:"managed,omitempty"`
	Members        []string `yaml:"members,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ConnectionsFile struct {
	Connections []ConnectionData `yaml:"connections"`
}

type ConversationsFile struct {
	Conversations []ConversationData `yaml:"conversations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

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

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress SQL query logs and "record not found" noise
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
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	connections, err := loadConnections(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load connections: %w", err)
	}

	conversations, err := loadConversations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load conversations: %w", err)
	}

	// Connections first so seeded rosters satisfy the mutual-connectivity rule
	connectionCreated := 0
	for _, connData := range connections {
		created, err := createConnection(db, connData)
		if err != nil {
			return fmt.Errorf("failed to create connection %s -> %s: %w", connData.FromUserID, connData.ToUserID, err)
		}
		connectionCreated += created
	}
	log.Printf("Connections: %d created, %d total", connectionCreated, len(connections))

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	conversationCreated := 0
	for _, convData := range conversations {
		created, err := createConversation(db, convData, teamMap)
		if err != nil {
			log.Printf("Warning: failed to create conversation %s: %v", convData.ConversationID, err)
			continue
		}
		if created {
			conversationCreated++
		}
	}
	log.Printf("Conversations: %d created, %d total", conversationCreated, len(conversations))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadConnections(dataDir string) ([]ConnectionData, error) {
	var allConnections []ConnectionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "connections") {
			var file ConnectionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allConnections = append(allConnections, file.Connections...)
		}
		return nil
	})

	return allConnections, err
}

func loadConversations(dataDir string) ([]ConversationData, error) {
	var allConversations []ConversationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "conversations") {
			var file ConversationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allConversations = append(allConversations, file.Conversations...)
		}
		return nil
	})

	return allConversations, err
}

func createConnection(db *gorm.DB, connData ConnectionData) (int, error) {
	from, err := uuid.Parse(connData.FromUserID)
	if err != nil {
		return 0, fmt.Errorf("invalid from_user_id: %w", err)
	}
	to, err := uuid.Parse(connData.ToUserID)
	if err != nil {
		return 0, fmt.Errorf("invalid to_user_id: %w", err)
	}

	status := models.ConnectionStatusAccepted
	if connData.Status != "" {
		status = models.ConnectionStatus(connData.Status)
	}

	pairs := [][2]uuid.UUID{{from, to}}
	if connData.Mutual {
		pairs = append(pairs, [2]uuid.UUID{to, from})
	}

	created := 0
	for _, pair := range pairs {
		var existing models.Connection
		err := db.Where("from_user_id = ? AND to_user_id = ?", pair[0], pair[1]).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			conn := models.Connection{
				FromUserID: pair[0],
				ToUserID:   pair[1],
				Status:     status,
			}
			if err := db.Create(&conn).Error; err != nil {
				return created, fmt.Errorf("failed to create connection: %w", err)
			}
			created++
		} else if err != nil {
			return created, fmt.Errorf("failed to query connection: %w", err)
		}
	}
	return created, nil
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:    teamData.Name,
				Icon:    teamData.Icon,
				IconKey: teamData.IconKey,
				Alive:   true,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			for _, memberData := range teamData.Members {
				if err := createTeamMember(db, team.ID, memberData); err != nil {
					log.Printf("Warning: failed to create member %s of team %s: %v", memberData.UserID, teamData.Name, err)
				}
			}
			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createTeamMember(db *gorm.DB, teamID uuid.UUID, memberData MemberData) error {
	userID, err := uuid.Parse(memberData.UserID)
	if err != nil {
		return fmt.Errorf("invalid user_id: %w", err)
	}

	permissions := models.PermissionSet{}
	if memberData.Owner {
		permissions = models.FullPermissions()
	} else {
		for _, name := range memberData.Permissions {
			permissions = append(permissions, models.Capability(name))
		}
	}
	if err := permissions.Validate(); err != nil {
		return fmt.Errorf("invalid permissions: %w", err)
	}

	member := models.TeamMember{
		TeamID:      teamID,
		UserID:      userID,
		Permissions: permissions.Normalize(),
	}
	return db.Create(&member).Error
}

func createConversation(db *gorm.DB, convData ConversationData, teamMap map[string]*models.Team) (bool, error) {
	team := teamMap[convData.TeamName]
	if team == nil {
		return false, fmt.Errorf("team %s not found for conversation %s", convData.TeamName, convData.ConversationID)
	}

	conversationID, err := uuid.Parse(convData.ConversationID)
	if err != nil {
		return false, fmt.Errorf("invalid conversation_id: %w", err)
	}

	var existing models.TeamConversation
	err = db.Where("team_id = ? AND conversation_id = ?", team.ID, conversationID).First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query conversation: %w", err)
	}
	if err == nil {
		return false, nil // existing
	}

	conv := models.TeamConversation{
		TeamID:         team.ID,
		ConversationID: conversationID,
		Managed:        convData.Managed,
	}
	if err := db.Create(&conv).Error; err != nil {
		return false, fmt.Errorf("failed to create conversation: %w", err)
	}

	for _, rawID := range convData.Members {
		userID, err := uuid.Parse(rawID)
		if err != nil {
			log.Printf("Warning: invalid conversation member %s: %v", rawID, err)
			continue
		}
		member := models.ConversationMember{
			ConversationID: conversationID,
			UserID:         userID,
		}
		if err := db.Where("conversation_id = ? AND user_id = ?", conversationID, userID).
			FirstOrCreate(&member, member).Error; err != nil {
			log.Printf("Warning: failed to create conversation member %s: %v", rawID, err)
		}
	}

	return true, nil
}
