package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/zentask/pkg/timeutil"
)

// Defaults applied when the config file and environment are silent.
const (
	DefaultPath              = "~/.zentask"
	DefaultReminderInterval  = time.Minute
	DefaultReminderLookahead = 30 * time.Minute
	DefaultWeeklyGoal        = 5
)

// Config locates the persisted store.
type Config interface {
	BasePath() string
}

// FileConfig is the configuration read from `.zentask` files and ZENTASK_*
// environment variables.
type FileConfig struct {
	Path              string        `json:"path"`
	ReminderInterval  time.Duration `json:"reminderInterval"`
	ReminderLookahead time.Duration `json:"reminderLookahead"`
	WeeklyGoal        int           `json:"weeklyGoal"`
}

// LoadConfig looks for a `.zentask` yaml file in $ZENTASK_CONFIG_PATH and the
// working directory. A missing file is fine; a malformed one is an error.
func LoadConfig() (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("reminder.interval", timeutil.FormatWindow(DefaultReminderInterval))
	v.SetDefault("reminder.lookahead", timeutil.FormatWindow(DefaultReminderLookahead))
	v.SetDefault("weekly_goal", DefaultWeeklyGoal)
	v.SetConfigName(".zentask") // .yaml is implicit
	v.SetEnvPrefix("ZENTASK")
	v.AutomaticEnv()

	if override := os.Getenv("ZENTASK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	interval, err := timeutil.ParseWindow(v.GetString("reminder.interval"), DefaultReminderInterval)
	if err != nil {
		return nil, fmt.Errorf("store: reminder.interval: %w", err)
	}
	lookahead, err := timeutil.ParseWindow(v.GetString("reminder.lookahead"), DefaultReminderLookahead)
	if err != nil {
		return nil, fmt.Errorf("store: reminder.lookahead: %w", err)
	}
	goal := v.GetInt("weekly_goal")
	if goal <= 0 {
		goal = DefaultWeeklyGoal
	}

	return &FileConfig{
		Path:              path,
		ReminderInterval:  interval,
		ReminderLookahead: lookahead,
		WeeklyGoal:        goal,
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}
