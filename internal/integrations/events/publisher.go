package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	redialMinDelay = time.Second
	redialMaxDelay = 30 * time.Second
)

// amqpChannel часть *amqp.Channel, нужная для публикации
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// session соединение и канал одной попытки подключения
type session struct {
	conn io.Closer
	ch   amqpChannel
}

func (s *session) close() {
	_ = s.ch.Close()
	_ = s.conn.Close()
}

// dialFunc подключается к брокеру. Канал закрытия срабатывает при потере соединения.
type dialFunc func() (*session, <-chan *amqp.Error, error)

// Publisher публикует события бронирований в topic exchange RabbitMQ.
// После потери соединения переподключается в фоне; пока связи нет, события отбрасываются.
type Publisher struct {
	dial     dialFunc
	exchange string
	timeout  time.Duration
	logger   Logger

	minDelay time.Duration
	maxDelay time.Duration

	mu     sync.Mutex
	sess   *session
	closed bool
	stop   chan struct{}
	done   chan struct{}
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string, timeout time.Duration, logger Logger) (*Publisher, error) {
	return newPublisher(amqpDialer(url, exchange), exchange, timeout, logger)
}

func newPublisher(dial dialFunc, exchange string, timeout time.Duration, logger Logger) (*Publisher, error) {
	sess, closing, err := dial()
	if err != nil {
		return nil, err
	}

	p := &Publisher{
		dial:     dial,
		exchange: exchange,
		timeout:  timeout,
		logger:   logger,
		minDelay: redialMinDelay,
		maxDelay: redialMaxDelay,
		sess:     sess,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.watch(closing)

	logger.Info("Events: publishing to exchange %s", exchange)
	return p, nil
}

// amqpDialer открывает соединение, канал и объявляет exchange
func amqpDialer(url, exchange string) dialFunc {
	return func() (*session, <-chan *amqp.Error, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
		}

		if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
		}

		closing := conn.NotifyClose(make(chan *amqp.Error, 1))
		return &session{conn: conn, ch: ch}, closing, nil
	}
}

// watch ждёт потери соединения и переподключается с экспоненциальной задержкой
func (p *Publisher) watch(closing <-chan *amqp.Error) {
	defer close(p.done)

	for {
		var reason *amqp.Error
		select {
		case <-p.stop:
			return
		case reason = <-closing:
		}

		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		p.sess = nil
		p.mu.Unlock()
		p.logger.Warn("Events: connection to broker lost: %v, events are dropped until reconnect", reason)

		next, ok := p.redial()
		if !ok {
			return
		}
		closing = next
	}
}

// redial повторяет подключение до успеха или Close
func (p *Publisher) redial() (<-chan *amqp.Error, bool) {
	delay := p.minDelay
	for attempt := 1; ; attempt++ {
		select {
		case <-p.stop:
			return nil, false
		case <-time.After(delay):
		}

		sess, closing, err := p.dial()
		if err != nil {
			p.logger.Warn("Events: reconnect attempt %d failed: %v", attempt, err)
			delay *= 2
			if delay > p.maxDelay {
				delay = p.maxDelay
			}
			continue
		}

		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			sess.close()
			return nil, false
		}
		p.sess = sess
		p.mu.Unlock()

		p.logger.Info("Events: reconnected to broker after %d attempt(s)", attempt)
		return closing, true
	}
}

// PublishBookingSubmitted публикует booking.submitted
func (p *Publisher) PublishBookingSubmitted(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, RoutingBookingSubmitted, newBookingEvent(RoutingBookingSubmitted, b, time.Now()))
}

// PublishBookingConfirmed публикует booking.confirmed
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, RoutingBookingConfirmed, newBookingEvent(RoutingBookingConfirmed, b, time.Now()))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, routingKey, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.sess == nil {
		return fmt.Errorf("%w: %s booking=%s", ErrNotConnected, routingKey, event.BookingID)
	}

	err = p.sess.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.BookingID,
		Type:         routingKey,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s booking=%s: %v", ErrPublish, routingKey, event.BookingID, err)
	}
	return nil
}

// Close останавливает переподключение и закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.stop)
	sess := p.sess
	p.sess = nil
	p.mu.Unlock()

	var err error
	if sess != nil {
		_ = sess.ch.Close()
		err = sess.conn.Close()
	}
	<-p.done
	return err
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

// PublishBookingSubmitted ничего не делает
func (NoopPublisher) PublishBookingSubmitted(context.Context, *domain.Booking) error { return nil }

// PublishBookingConfirmed ничего не делает
func (NoopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking) error { return nil }

// Close ничего не делает
func (NoopPublisher) Close() error { return nil }
