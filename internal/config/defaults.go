package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log_path":    "~/.pomostart/launch.log",
		"working_dir": "~/pomodoro",
		"terminals": []string{
			"cosmic-term",
			"gnome-terminal",
		},
		"window_title":  "Pomodoro",
		"timer_cmd":     "python3 pomodoro.py --work-time 40 --break-time 25",
		"work_minutes":  40,
		"break_minutes": 25,
		"window_width":  500,
		"window_height": 20,
		"right_margin":  50,
		"top_offset":    50,
		"startup_delay": 10,
		"ready_marker":  "",
		"ready_timeout": 15,
		"state_file":    "~/.pomostart/state/pomodoro.json",
	}
}
