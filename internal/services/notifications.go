package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

const (
	notifierInterval       = 6 * time.Hour
	defaultReminderLead    = 7
	sentNotificationBudget = 500
)

// NotificationService pushes a Telegram message when a pending reminder
// comes due. It is wholly optional: without TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID in the environment, Start is a no-op.
type NotificationService struct {
	database *gorm.DB
	location *time.Location
	botToken string
	chatID   string
	enabled  bool
	leadDays int
	client   *http.Client

	mu            sync.Mutex
	sentReminders map[string]time.Time
}

func NewNotificationService(database *gorm.DB, location *time.Location) *NotificationService {
	botToken := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))

	leadDays := defaultReminderLead
	if raw := strings.TrimSpace(os.Getenv("REMINDER_LEAD_DAYS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			leadDays = parsed
		}
	}

	return &NotificationService{
		database:      database,
		location:      location,
		botToken:      botToken,
		chatID:        chatID,
		enabled:       botToken != "" && chatID != "",
		leadDays:      leadDays,
		client:        &http.Client{Timeout: 15 * time.Second},
		sentReminders: make(map[string]time.Time),
	}
}

func (service *NotificationService) Start(ctx context.Context) {
	if !service.enabled {
		log.Printf("notifications: telegram disabled (set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to enable)")
		return
	}

	go func() {
		ticker := time.NewTicker(notifierInterval)
		defer ticker.Stop()

		service.runOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.runOnce(ctx)
			}
		}
	}()
}

func (service *NotificationService) runOnce(ctx context.Context) {
	today := dateOnly(time.Now().In(service.location))
	horizon := today.AddDate(0, 0, service.leadDays)

	reminders := make([]models.Reminder, 0)
	err := service.database.
		Where("status = ?", models.ReminderPending).
		Where("(next_due_date IS NOT NULL AND next_due_date <= ?) OR (next_due_date IS NULL AND due_date IS NOT NULL AND due_date <= ?)", horizon, horizon).
		Find(&reminders).Error
	if err != nil {
		log.Printf("notifications: load due reminders failed: %v", err)
		return
	}

	for _, reminder := range reminders {
		key := fmt.Sprintf("reminder:%d:%s", reminder.ID, today.Format("2006-01-02"))
		if !service.shouldSend(key, today) {
			continue
		}

		var vehicle models.Vehicle
		if err := service.database.First(&vehicle, reminder.VehicleID).Error; err != nil {
			log.Printf("notifications: load vehicle %d failed: %v", reminder.VehicleID, err)
			continue
		}
		if !vehicle.IsActive {
			continue
		}

		if err := service.sendTelegram(ctx, dueReminderMessage(vehicle, reminder)); err != nil {
			log.Printf("notifications: send reminder %d failed: %v", reminder.ID, err)
		}
	}
}

func dueReminderMessage(vehicle models.Vehicle, reminder models.Reminder) string {
	title := reminder.ServiceType
	if reminder.ServiceType == models.ServiceCustom && reminder.CustomTitle != "" {
		title = reminder.CustomTitle
	}

	due := reminder.NextDueDate
	if due == nil {
		due = reminder.DueDate
	}

	message := fmt.Sprintf("Gearbox reminder: %d %s %s needs %s", vehicle.Year, vehicle.Make, vehicle.Model, title)
	if due != nil {
		message += " by " + due.Format("Jan 2")
	}
	return message + "."
}

func (service *NotificationService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sentReminders[key]; ok && sentOn.Equal(today) {
		return false
	}

	service.sentReminders[key] = today
	if len(service.sentReminders) > sentNotificationBudget {
		service.sentReminders = make(map[string]time.Time)
	}
	return true
}

func (service *NotificationService) sendTelegram(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", service.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", service.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := service.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
