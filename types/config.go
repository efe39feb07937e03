package types

import (
	errs "errors"
	"fmt"
	"net/mail"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/oliverisaac/goli"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type Config struct {
	ListenAddr        string
	AllowSignup       bool
	AllowSignupEmails []string
	CookieSecret      []byte
	DBDriver          string
	DBPath            string
	DBDSN             string
	RedisAddr         string
	AuthorCacheTTL    time.Duration
	LogLevel          logrus.Level
}

// SignupAllowed reports whether email may register under this config.
func (c Config) SignupAllowed(email string) bool {
	if !c.AllowSignup {
		return false
	}
	if len(c.AllowSignupEmails) == 0 {
		return true
	}
	for _, e := range c.AllowSignupEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

func ConfigFromEnv() (Config, error) {
	ret := Config{}
	var retErr error
	var err error

	ret.ListenAddr = goli.DefaultEnv("JOTTER_LISTEN_ADDR", ":8080")

	ret.AllowSignup, err = strconv.ParseBool(goli.DefaultEnv("JOTTER_ALLOW_SIGNUP", "true"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing JOTTER_ALLOW_SIGNUP"))
	}

	allowedEmails := strings.Split(os.Getenv("JOTTER_ALLOW_SIGNUP_EMAILS"), ",")
	for _, e := range allowedEmails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		email, err := mail.ParseAddress(e)
		if err != nil {
			retErr = errs.Join(retErr, errors.Wrapf(err, "parsing email %q", e))
		} else {
			ret.AllowSignupEmails = append(ret.AllowSignupEmails, email.Address)
		}
	}
	if len(ret.AllowSignupEmails) > 0 {
		logrus.Infof("Allowed signup emails: %v", ret.AllowSignupEmails)
	}

	cookieSecret, ok := os.LookupEnv("JOTTER_COOKIE_STORE_SECRET")
	if !ok || cookieSecret == "" {
		retErr = errs.Join(retErr, fmt.Errorf("You must define env JOTTER_COOKIE_STORE_SECRET"))
	} else {
		ret.CookieSecret = []byte(cookieSecret)
	}

	ret.DBDriver = goli.DefaultEnv("JOTTER_DB_DRIVER", DBDriverSQLite)
	switch ret.DBDriver {
	case DBDriverSQLite:
		ret.DBPath, ok = os.LookupEnv("JOTTER_DB_PATH")
		if !ok {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env JOTTER_DB_PATH"))
		} else if _, err := os.Stat(path.Dir(ret.DBPath)); err != nil {
			retErr = errs.Join(retErr, errors.Wrap(err, "Directory for JOTTER_DB_PATH must exist"))
		}
	case DBDriverPostgres:
		ret.DBDSN, ok = os.LookupEnv("JOTTER_DB_DSN")
		if !ok || ret.DBDSN == "" {
			retErr = errs.Join(retErr, fmt.Errorf("You must define env JOTTER_DB_DSN when JOTTER_DB_DRIVER=postgres"))
		}
	default:
		retErr = errs.Join(retErr, fmt.Errorf("unknown JOTTER_DB_DRIVER %q", ret.DBDriver))
	}

	ret.RedisAddr = os.Getenv("JOTTER_REDIS_ADDR")

	ret.AuthorCacheTTL, err = time.ParseDuration(goli.DefaultEnv("JOTTER_AUTHOR_CACHE_TTL", "5m"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing JOTTER_AUTHOR_CACHE_TTL"))
	}

	ret.LogLevel, err = logrus.ParseLevel(goli.DefaultEnv("JOTTER_LOG_LEVEL", "info"))
	if err != nil {
		retErr = errs.Join(retErr, errors.Wrap(err, "parsing JOTTER_LOG_LEVEL"))
	}

	return ret, retErr
}
