package main

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tarancss/adptools/lib/block"
	"github.com/tarancss/adptools/lib/config"
	"github.com/tarancss/adptools/lib/creds"
	"github.com/tarancss/adptools/lib/msg"
	"github.com/tarancss/adptools/lib/msg/amqp"
	"github.com/tarancss/adptools/lib/rpc"
	"github.com/tarancss/adptools/lib/store"
	"github.com/tarancss/adptools/lib/store/db"
	"github.com/tarancss/adptools/tool"
)

// service holds the components wired from the configuration.
type service struct {
	conf config.ServiceConfig
	d    *tool.Dispatcher
	db   store.DB      // nil when no dbconn is configured
	mb   msg.MsgBroker // nil when no mbconn is configured
}

// newService extracts the configuration and connects the audit store and the message broker when configured.
func newService() (*service, error) {
	conf, err := config.ExtractConfiguration(confPath)
	if err != nil {
		return nil, err
	}

	log.Printf("Configuration:%+v", conf)

	svc := &service{conf: conf}

	// connect to database
	if conf.DBConn != "" {
		if svc.db, err = db.New(conf.DBType, conf.DBConn); err != nil {
			return nil, err
		}

		log.Printf("Connected to %s database\n", conf.DBType)
	}

	// load message broker
	if conf.MbConn != "" {
		if svc.mb, err = connectBroker(conf); err != nil {
			svc.close()

			return nil, err
		}
	}

	// load all blockchains
	bc := block.Init()
	client := rpc.New(conf.Gateway, creds.New(conf), &http.Client{Timeout: conf.RPCTimeout()})

	svc.d = tool.New(bc, client, svc.mb, svc.db)

	return svc, nil
}

func connectBroker(conf config.ServiceConfig) (msg.MsgBroker, error) {
	mb, err := amqp.New(conf.MbConn)
	if err != nil {
		time.Sleep(10 * time.Second) //nolint:gomnd // wait 10s for AMQP to be ready and try to reconnect

		if mb, err = amqp.New(conf.MbConn); err != nil {
			return nil, err
		}
	}

	if err = mb.Setup(nil); err != nil {
		mb.Close()

		return nil, err
	}

	return mb, nil
}

// close releases the broker and database connections.
func (s *service) close() {
	if s.mb != nil {
		errClose := s.mb.Close()
		log.Printf("Closing messageBroker: %v", errClose)
	}

	if s.db != nil {
		err := db.Close(s.conf.DBType, s.db)
		log.Printf("Disconnecting %v database, err:%v\n", s.conf.DBType, err)
	}
}

// serveMetrics exposes the Prometheus metrics in the background.
func serveMetrics() {
	go func() {
		log.Println("Serving metrics API")

		h := http.NewServeMux()
		h.Handle("/metrics", promhttp.Handler())

		if err := http.ListenAndServe(":9100", h); err != nil { //nolint:gosec // metrics endpoint
			log.Printf("Error serving metrics:%v", err)
		}
	}()
}
