package options

import "time"

type ServeOptions struct {
	// Relay

	LpsID                   string        `kong:"help='Identifier of the legacy switch served by --listen-address',env='LPSGATEWAY_LPS_ID',default='lps1'"`
	ListenAddress           string        `kong:"help='TCP address to accept legacy switch connections on',env='LPSGATEWAY_LISTEN_ADDRESS',default=':3000'"`
	ConfigFile              string        `kong:"help='JSON file with one or more relay definitions; replaces --lps-id and --listen-address',env='LPSGATEWAY_CONFIG_FILE',type='existingfile'"`
	TransactionExpiryWindow time.Duration `kong:"help='How far in the future authorization requests expire',env='LPSGATEWAY_TRANSACTION_EXPIRY_WINDOW',default='30s'"`

	// HTTP

	HTTPListenAddress   string        `kong:"help='Address the HTTP API and metrics listen on',env='LPSGATEWAY_HTTP_LISTEN_ADDRESS',default=':8080'"`
	StatsReportInterval time.Duration `kong:"help='How often to report gateway counters',env='LPSGATEWAY_STATS_REPORT_INTERVAL',default='10s'"`

	// Message log

	MsgLogType             string `kong:"name='msglog-type',help='Message log backend',env='LPSGATEWAY_MSGLOG_TYPE',enum='memory,redis,postgres,mongo',default='memory'"`
	PostgresDSN            string `kong:"help='Postgres DSN (msglog-type=postgres)',env='LPSGATEWAY_POSTGRES_DSN'"`
	PostgresMaxConnections int    `kong:"help='Postgres pool size',env='LPSGATEWAY_POSTGRES_MAX_CONNECTIONS',default='10'"`
	MongoDSN               string `kong:"help='MongoDB DSN (msglog-type=mongo)',env='LPSGATEWAY_MONGO_DSN'"`
	MongoDatabase          string `kong:"help='MongoDB database',env='LPSGATEWAY_MONGO_DATABASE',default='lpsgateway'"`
	MongoCollection        string `kong:"help='MongoDB collection',env='LPSGATEWAY_MONGO_COLLECTION',default='lps_messages'"`

	// Queue

	QueueType                 string   `kong:"help='Work queue backend',env='LPSGATEWAY_QUEUE_TYPE',enum='memory,redis-streams,kafka,rabbitmq',default='memory'"`
	RedisStreamsConsumerGroup string   `kong:"help='Consumer group used for redis streams',env='LPSGATEWAY_REDIS_STREAMS_CONSUMER_GROUP',default='lpsgateway'"`
	RedisStreamsConsumerName  string   `kong:"help='Consumer name used for redis streams',env='LPSGATEWAY_REDIS_STREAMS_CONSUMER_NAME',default='lpsgateway-1'"`
	KafkaBrokers              []string `kong:"help='Kafka broker address(es) (queue-type=kafka)',env='LPSGATEWAY_KAFKA_BROKERS'"`
	KafkaGroupID              string   `kong:"help='Kafka consumer group id',env='LPSGATEWAY_KAFKA_GROUP_ID',default='lpsgateway'"`
	RabbitURL                 string   `kong:"help='RabbitMQ URL (queue-type=rabbitmq)',env='LPSGATEWAY_RABBIT_URL'"`
	RabbitPrefetch            int      `kong:"help='RabbitMQ prefetch count',env='LPSGATEWAY_RABBIT_PREFETCH',default='1'"`

	// Redis is shared by the redis message log and redis-streams queue

	RedisAddress  string `kong:"help='Redis address',env='LPSGATEWAY_REDIS_ADDRESS',default='localhost:6379'"`
	RedisPassword string `kong:"help='Redis password',env='LPSGATEWAY_REDIS_PASSWORD'"`
	RedisDatabase int    `kong:"help='Redis database',env='LPSGATEWAY_REDIS_DATABASE',default='0'"`
}
