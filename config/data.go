package config

import "github.com/spf13/viper"

// Data data config struct
type Data struct {
	MongoDB *MongoDB
}

// MongoDB mongodb node config struct
type MongoDB struct {
	URI      string
	Database string
}

// getDataConfig returns the data config.
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		MongoDB: &MongoDB{
			URI:      v.GetString("data.mongodb.uri"),
			Database: v.GetString("data.mongodb.database"),
		},
	}
}
