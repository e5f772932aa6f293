package config

import "github.com/spf13/viper"

// Auth auth config struct
type Auth struct {
	JWT *JWT
}

// JWT jwt config struct
type JWT struct {
	Secret string
	Expire int // session token lifetime in hours
}

// getAuth returns the auth config.
func getAuth(v *viper.Viper) *Auth {
	return &Auth{
		JWT: getJWT(v),
	}
}

// getJWT returns the jwt config.
func getJWT(v *viper.Viper) *JWT {
	secret := v.GetString("auth.jwt.secret")
	if secret == "" {
		secret = insecureDefaultSecret
	}
	expire := v.GetInt("auth.jwt.expire")
	if expire == 0 {
		expire = 24
	}
	return &JWT{
		Secret: secret,
		Expire: expire,
	}
}
