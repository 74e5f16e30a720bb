// Package amqp implements the message broker interface for AMQP compliant brokers (ie RabbitMQ)
package amqp

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/streadway/amqp"

	"github.com/tarancss/adptools/lib/msg"
	"github.com/tarancss/adptools/lib/store"
)

// Amqp implements a connection to a broker and a channel for reuse.
type Amqp struct {
	conn *amqp.Connection
	mu   sync.Mutex // guards ch, tool calls publish concurrently
	ch   *amqp.Channel
}

// New instantiates a new amqp broker.
func New(uri string) (msg.MsgBroker, error) {
	r := Amqp{}

	var err error

	if r.conn, err = amqp.Dial(uri); err != nil {
		return &r, err
	}

	log.Printf("Connected to message broker")

	return &r, err
}

// Setup obtains an amqp channel and declares the message broker exchanges:
//
// - tc ("tool calls"): the tool server publishes one event per invocation to this exchange
func (r *Amqp) Setup(x interface{}) error {
	// obtain a one-use channel
	channel, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	return channel.ExchangeDeclare(msg.ToolCalls, amqp.ExchangeTopic, true, false, false, false, nil)
}

// Close terminates gracefully the connection to the AMQP message broker
func (r *Amqp) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil {
		if err := r.ch.Close(); err != nil {
			log.Printf("Error closing amqp.Channel:%v", err)
		}

		r.ch = nil

		log.Printf("amqp.Channel closed!")
	}

	return r.conn.Close()
}

// SendCall publishes a tool invocation event to the "tc" exchange.
func (r *Amqp) SendCall(c store.Call) error {
	// marshal to JSON
	jsonDoc, err := json.Marshal(c)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// obtain channel if not present
	if r.ch == nil {
		if r.ch, err = r.conn.Channel(); err != nil {
			return err
		}
	}
	// build body
	m := amqp.Publishing{
		Headers:     amqp.Table{"x-tool-name": c.Tool},
		Body:        jsonDoc,
		ContentType: "application/json",
		Timestamp:   c.TS,
	}
	// publish
	if err = r.ch.Publish(msg.ToolCalls, msg.RoutingKey(c), false, false, m); err != nil {
		log.Printf("[%s] Error sending tool call event to message broker %v", c.Chain, err)
		// drop the channel, the next send opens a new one
		r.ch = nil
	}

	return err
}

// GetCalls consumes events from the "tc" exchange matching pattern, pushing them to the returned channel. It uses an
// exclusive, auto-deleted queue so each observer gets its own copy of the events.
func (r *Amqp) GetCalls(pattern string) (<-chan store.Call, <-chan error, error) {
	// consumers get their own channel
	ch, err := r.conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	// declare queue
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, nil, err
	}
	// bind queue to exchange
	if err = ch.QueueBind(q.Name, pattern, msg.ToolCalls, false, nil); err != nil {
		return nil, nil, err
	}
	// create channel for receiving events
	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, nil, err
	}
	// define channels to return
	calls := make(chan store.Call)
	errs := make(chan error, 1)
	// start routine to consume messages from broker
	go func() {
		defer close(calls)
		defer ch.Close()

		for m := range msgs {
			var c store.Call
			if err := json.Unmarshal(m.Body, &c); err != nil {
				select {
				case errs <- err:
				default:
				}

				continue
			}
			calls <- c
		}
	}()

	return calls, errs, nil
}
