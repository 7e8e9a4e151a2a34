package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	CarService *CarProduceService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	carService := InitCarProduceService(channel)
	if carService == nil {
		panic("Failed to initialize Car produce service")
	}

	produceInstance = &Produce{
		CarService: carService,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
