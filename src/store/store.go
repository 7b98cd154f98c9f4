package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"xorm.io/xorm"
	"xorm.io/xorm/names"

	"basicsort/src/utils"
)

var logger = utils.GetLogger("basicsort")

const tablePrefix = "bs_"

// Run is one recorded sort call.
type Run struct {
	Id          int64     `xorm:"pk autoincr"`
	Algorithm   string    `xorm:"varchar(32) notnull index"`
	Length      int       `xorm:"notnull"`
	Comparisons int64     `xorm:"notnull"`
	Swaps       int64     `xorm:"notnull"`
	Shifts      int64     `xorm:"notnull"`
	Duration    int64     `xorm:"notnull"` // nanoseconds
	Created     time.Time `xorm:"created"`
}

type Store struct {
	engine *xorm.Engine
}

// Open connects to the metadata engine behind metaURL and syncs the schema.
//
//	mysql://user:password@(127.0.0.1:3306)/basicsort
//	sqlite3:///var/lib/basicsort/history.db
func Open(metaURL string) (*Store, error) {
	driver, dsn, err := parseMetaURL(metaURL)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s engine", driver)
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}

	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), tablePrefix))
	if err = engine.Sync2(new(Run)); err != nil {
		_ = engine.Close()
		return nil, errors.Wrap(err, "create table")
	}
	logger.Debugf("history store opened: %s", driver)
	return &Store{engine: engine}, nil
}

func parseMetaURL(metaURL string) (driver, dsn string, err error) {
	p := strings.Index(metaURL, "://")
	if p < 0 {
		return "", "", errors.Errorf("invalid meta url %q: missing scheme", metaURL)
	}
	driver, addr := metaURL[:p], metaURL[p+3:]
	switch driver {
	case "mysql":
		return driver, mysqlDSN(addr), nil
	case "sqlite3":
		if addr == "" {
			return "", "", errors.Errorf("invalid meta url %q: empty path", metaURL)
		}
		return driver, addr, nil
	default:
		return "", "", errors.Errorf("invalid meta url %q: unsupported scheme %q", metaURL, driver)
	}
}

// mysqlDSN turns user:pass@(host:port)/db into a go-sql-driver DSN. An empty
// password is taken from META_PASSWORD.
func mysqlDSN(addr string) string {
	host := addr
	var cred string
	if at := strings.LastIndex(addr, "@"); at >= 0 {
		cred, host = addr[:at], addr[at+1:]
		if user := strings.TrimSuffix(cred, ":"); !strings.Contains(user, ":") {
			if pw := os.Getenv("META_PASSWORD"); pw != "" {
				cred = user + ":" + pw
			}
		}
		cred += "@"
	}
	if strings.HasPrefix(host, "(") {
		host = "tcp" + host
	}
	if !strings.Contains(host, "?") {
		host += "?charset=utf8mb4&parseTime=true"
	}
	return cred + host
}

func (s *Store) Record(run *Run) error {
	if _, err := s.engine.Insert(run); err != nil {
		return errors.Wrapf(err, "record %s run", run.Algorithm)
	}
	return nil
}

// Recent returns the newest runs first; an empty algorithm matches all.
func (s *Store) Recent(algorithm string, limit int) ([]Run, error) {
	sess := s.engine.Desc("id")
	if algorithm != "" {
		sess = sess.Where("algorithm = ?", algorithm)
	}
	if limit > 0 {
		sess = sess.Limit(limit)
	}
	var runs []Run
	if err := sess.Find(&runs); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	return runs, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}

func (r Run) String() string {
	return fmt.Sprintf("#%d %s n=%d cmp=%d swap=%d shift=%d %s",
		r.Id, r.Algorithm, r.Length, r.Comparisons, r.Swaps, r.Shifts, time.Duration(r.Duration))
}
