package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Points   Points
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Points holds the fixed award amounts for completion events. Quiz awards are
// sized to the attempt score and are not configured here.
type Points struct {
	LectureCompletion    int
	AssignmentCompletion int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POINTS_LECTURE_COMPLETION", 5)
	viper.SetDefault("POINTS_ASSIGNMENT_COMPLETION", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Points.LectureCompletion = viper.GetInt("POINTS_LECTURE_COMPLETION")
	config.Points.AssignmentCompletion = viper.GetInt("POINTS_ASSIGNMENT_COMPLETION")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
