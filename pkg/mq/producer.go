package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var defaultProducer *Producer

// SetDefault 进程启动时注入, 允许为nil
func SetDefault(p *Producer) {
	defaultProducer = p
}

func Default() *Producer {
	return defaultProducer
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		ToggleEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare toggle event exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		ToggleEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare toggle event queue: %w", err)
	}

	err = p.channel.QueueBind(
		ToggleEventQueue,
		"",
		ToggleEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind toggle event queue: %w", err)
	}

	return nil
}

// PublishToggleEvent 发布翻转事件
// 生产者为nil时直接跳过, 事件只是旁路通知, 不影响主流程
func (p *Producer) PublishToggleEvent(ctx context.Context, event *ToggleEvent) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal toggle event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		ToggleEventExchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish toggle event: %w", err)
	}

	hlog.CtxInfof(ctx, "Published toggle event: %+v", event)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
