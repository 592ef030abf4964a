package messaging

import (
	"fmt"
	"hospital-service/internal/app/config"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

// DeclareEventExchange makes sure the topic exchange domain events are published to exists.
func DeclareEventExchange(conn *amqp091.Connection, exchange string) {
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("Failed to declare rabbitMQ exchange %s: %s", exchange, err.Error())
	}
	log.Printf("Successfully declared rabbitMQ exchange %s", exchange)
}
