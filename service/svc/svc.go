package svc

import (
	"time"

	"github.com/dropradar/DropRadar/config"
	"github.com/dropradar/DropRadar/dao"
	"github.com/dropradar/DropRadar/stores/gdb"
)

// ServerCtx carries the per-process collaborators. Now is injected so the
// check-in date logic is testable without the wall clock.
type ServerCtx struct {
	C   *config.Config
	Dao *dao.Dao
	Now func() time.Time
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	db, err := gdb.NewDB(c.DB.DSN)
	if err != nil {
		return nil, err
	}
	return &ServerCtx{
		C:   c,
		Dao: dao.New(db),
		Now: time.Now,
	}, nil
}
