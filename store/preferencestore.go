package store

/*
 * Copyright 2020-2026 Aldelo, LP
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

import (
	"database/sql"
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/patrickmn/go-cache"
	util "github.com/yellowcab/common"
	"github.com/yellowcab/common/poll/pollparameterresponsetype"
	data "github.com/yellowcab/common/wrapper/zap"
)

const schema = `CREATE TABLE IF NOT EXISTS subscription_preference (
	subscription_id TEXT PRIMARY KEY,
	response_type   INTEGER NOT NULL,
	updated_at      TEXT NOT NULL
)`

// PreferenceStore persists the response type each subscription asked for (using sqlx package over sqlite)
//
//	DatabasePath = full path to the sqlite db file with file name and extension
//	BusyTimeoutMS = 0 if not specified; > 0 if specified
//	CacheTTL = how long a lookup stays in memory; 0 disables the cache
//	Logger = optional, receives warnings for stored codes this build does not recognize
type PreferenceStore struct {
	DatabasePath  string
	BusyTimeoutMS int
	CacheTTL      time.Duration
	Logger        *data.ZapLog

	db    *sqlx.DB
	cache *cache.Cache

	mu sync.RWMutex
}

// NewSubscriptionID returns a new time sortable subscription id
func NewSubscriptionID() string {
	return util.NewULID()
}

// GetDsn serializes the sqlite dsn for DatabasePath
func (s *PreferenceStore) GetDsn() (string, error) {
	if util.LenTrim(s.DatabasePath) == 0 {
		return "", errors.New("PreferenceStore Database Path is Required")
	}

	str := s.DatabasePath + "?" + "cache=private"
	str += "&_locking_mode=EXCLUSIVE"
	str += "&_txlock=immediate"
	str += "&mode=rwc"
	str += "&_journal_mode=WAL"
	str += "&_synchronous=1"

	if s.BusyTimeoutMS > 0 {
		str += "&_busy_timeout=" + strconv.Itoa(s.BusyTimeoutMS)
	}

	return str, nil
}

// Open connects to the database and creates the preference table if missing
func (s *PreferenceStore) Open() error {
	str, err := s.GetDsn()
	if err != nil {
		return err
	}

	db, e1 := sqlx.Open("sqlite3", str)
	if e1 != nil {
		return util.ErrAddLineTimeFileInfo(e1)
	}

	// exclusive locking mode allows a single connection only
	db.SetMaxOpenConns(1)

	if e1 = db.Ping(); e1 != nil {
		_ = db.Close()
		return util.ErrAddLineTimeFileInfo(e1)
	}

	if _, e1 = db.Exec(schema); e1 != nil {
		_ = db.Close()
		return util.ErrAddLineTimeFileInfo(e1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db = db

	if s.CacheTTL > 0 {
		s.cache = cache.New(s.CacheTTL, 2*s.CacheTTL)
	} else {
		s.cache = nil
	}

	return nil
}

// Close will close the database connection and drop the cache
func (s *PreferenceStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = nil

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	return nil
}

func (s *PreferenceStore) conn() (*sqlx.DB, *cache.Cache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, nil, errors.New("PreferenceStore is Not Open")
	}

	return s.db, s.cache, nil
}

// Save upserts the response type for subscriptionID
func (s *PreferenceStore) Save(subscriptionID string, responseType pollparameterresponsetype.PollParameterResponseType) error {
	if util.LenTrim(subscriptionID) == 0 {
		return errors.New("Save Failed: Subscription ID is Required")
	}

	if !responseType.Valid() {
		return errors.New("Save Failed: Response Type " + responseType.String() + " is Not Valid")
	}

	db, c, err := s.conn()
	if err != nil {
		return err
	}

	if _, err = db.Exec(`INSERT INTO subscription_preference (subscription_id, response_type, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(subscription_id) DO UPDATE SET response_type = excluded.response_type, updated_at = excluded.updated_at`,
		subscriptionID, responseType, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return util.ErrAddLineTimeFileInfo(err)
	}

	if c != nil {
		c.Delete(subscriptionID)
	}

	return nil
}

// Get returns the stored response type for subscriptionID,
// found is false when nothing is stored or the stored code is not recognized by this build
func (s *PreferenceStore) Get(subscriptionID string) (responseType pollparameterresponsetype.PollParameterResponseType, found bool, err error) {
	if util.LenTrim(subscriptionID) == 0 {
		return responseType, false, errors.New("Get Failed: Subscription ID is Required")
	}

	db, c, err := s.conn()
	if err != nil {
		return responseType, false, err
	}

	if c != nil {
		if v, ok := c.Get(subscriptionID); ok {
			return v.(pollparameterresponsetype.PollParameterResponseType), true, nil
		}
	}

	var code int64

	if err = db.Get(&code, "SELECT response_type FROM subscription_preference WHERE subscription_id = ?", subscriptionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return responseType, false, nil
		}
		return responseType, false, util.ErrAddLineTimeFileInfo(err)
	}

	if code >= math.MinInt32 && code <= math.MaxInt32 {
		responseType, found = pollparameterresponsetype.Lookup(int32(code))
	}

	if !found {
		s.Logger.Warnw("stored poll parameter response type not recognized, ignored", "subscription_id", subscriptionID, "code", code)
		return responseType, false, nil
	}

	if c != nil {
		c.Set(subscriptionID, responseType, cache.DefaultExpiration)
	}

	return responseType, true, nil
}

// Delete removes the preference of subscriptionID, deleting a missing id is not an error
func (s *PreferenceStore) Delete(subscriptionID string) error {
	if util.LenTrim(subscriptionID) == 0 {
		return errors.New("Delete Failed: Subscription ID is Required")
	}

	db, c, err := s.conn()
	if err != nil {
		return err
	}

	if _, err = db.Exec("DELETE FROM subscription_preference WHERE subscription_id = ?", subscriptionID); err != nil {
		return util.ErrAddLineTimeFileInfo(err)
	}

	if c != nil {
		c.Delete(subscriptionID)
	}

	return nil
}
