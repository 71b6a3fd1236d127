// Package catalog - AWS service profiles
// Compatibility scores, pros, cons and alternatives for every recommendable service.
package catalog

import "aws-recommender/core/types"

// RegisterAWS populates the catalog with all AWS service profiles
func RegisterAWS(c *Catalog) {
	// Compute
	c.Register(ServiceProfile{
		Name:        "EC2",
		Category:    Compute,
		Description: "Virtual servers in the cloud",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 80, "api": 75, "ml": 70, "data": 80, "serverless": 20, "storage": 40, "streaming": 60},
			types.Scale:          {"small": 50, "medium": 80, "large": 90, "enterprise": 95},
			types.Budget:         {"veryLow": 30, "low": 60, "medium": 80, "high": 90},
			types.TrafficPattern: {"predictable": 90, "variable": 70, "spiky": 50},
			types.Customization:  {"low": 50, "medium": 80, "high": 95},
			types.Performance:    {"standard": 80, "high": 85, "lowLatency": 90},
			types.OpsPreference:  {"fullyManaged": 30, "partial": 70, "fullControl": 95},
		},
		Pros: []string{
			"Maximum flexibility and control",
			"Wide range of instance types",
			"Supports almost any workload",
			"Can be cost-effective for steady workloads",
		},
		Cons: []string{
			"Requires significant operational overhead",
			"Need to manage scaling manually or with Auto Scaling",
			"Capacity planning required",
			"Pay for provisioned capacity even when idle",
		},
		Alternatives: []string{"Elastic Beanstalk", "ECS", "EKS"},
	})

	c.Register(ServiceProfile{
		Name:        "Lambda",
		Category:    Compute,
		Description: "Run code without thinking about servers",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 70, "api": 90, "ml": 60, "data": 75, "serverless": 100, "storage": 50, "streaming": 80},
			types.Scale:          {"small": 95, "medium": 90, "large": 80, "enterprise": 70},
			types.Budget:         {"veryLow": 95, "low": 90, "medium": 80, "high": 70},
			types.TrafficPattern: {"predictable": 80, "variable": 90, "spiky": 95},
			types.Customization:  {"low": 90, "medium": 80, "high": 50},
			types.Performance:    {"standard": 85, "high": 70, "lowLatency": 40},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 70, "fullControl": 30},
		},
		Pros: []string{
			"Zero server management",
			"Pay only for what you use (per-request)",
			"Automatic scaling",
			"Built-in fault tolerance",
			"Wide range of triggers and integrations",
		},
		Cons: []string{
			"15-minute maximum execution time",
			"Cold start latency for infrequent requests",
			"Limited customization of runtime environment",
			"Memory limit of 10GB",
			"Not ideal for long-running processes",
		},
		Alternatives: []string{"EC2", "ECS", "Elastic Beanstalk"},
	})

	c.Register(ServiceProfile{
		Name:        "ECS",
		Category:    Compute,
		Description: "Run and manage Docker containers",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 85, "api": 90, "ml": 80, "data": 85, "serverless": 60, "storage": 50, "streaming": 75},
			types.Scale:          {"small": 70, "medium": 85, "large": 90, "enterprise": 85},
			types.Budget:         {"veryLow": 50, "low": 70, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 80, "spiky": 75},
			types.Customization:  {"low": 70, "medium": 90, "high": 85},
			types.Performance:    {"standard": 85, "high": 80, "lowLatency": 70},
			types.OpsPreference:  {"fullyManaged": 80, "partial": 90, "fullControl": 70},
		},
		Pros: []string{
			"Container orchestration without managing Kubernetes",
			"Choice of Fargate (serverless) or EC2 launch types",
			"Integration with other AWS services",
			"Supports Docker Compose and ECS CLI",
			"Task definitions for consistent deployments",
		},
		Cons: []string{
			"AWS-specific constructs to learn",
			"Not as flexible as Kubernetes for complex orchestration",
			"Requires more setup than fully managed services",
			"More operational overhead than serverless options",
		},
		Alternatives: []string{"EKS", "EC2", "Elastic Beanstalk"},
	})

	c.Register(ServiceProfile{
		Name:        "EKS",
		Category:    Compute,
		Description: "Managed Kubernetes service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 80, "api": 85, "ml": 85, "data": 90, "serverless": 60, "storage": 60, "streaming": 80},
			types.Scale:          {"small": 50, "medium": 75, "large": 90, "enterprise": 95},
			types.Budget:         {"veryLow": 30, "low": 50, "medium": 70, "high": 90},
			types.TrafficPattern: {"predictable": 80, "variable": 85, "spiky": 80},
			types.Customization:  {"low": 50, "medium": 80, "high": 95},
			types.Performance:    {"standard": 80, "high": 85, "lowLatency": 80},
			types.OpsPreference:  {"fullyManaged": 60, "partial": 80, "fullControl": 90},
		},
		Pros: []string{
			"Industry-standard Kubernetes orchestration",
			"Portability of configurations",
			"Advanced networking and scheduling",
			"Support for hybrid deployments",
			"Large ecosystem of tools and extensions",
		},
		Cons: []string{
			"Complex to set up and manage",
			"Steeper learning curve than ECS",
			"Higher operational overhead",
			"More expensive at smaller scale",
			"Requires Kubernetes expertise",
		},
		Alternatives: []string{"ECS", "EC2"},
	})

	c.Register(ServiceProfile{
		Name:        "Elastic Beanstalk",
		Category:    Compute,
		Description: "Platform as a service for web applications",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 95, "api": 85, "ml": 50, "data": 60, "serverless": 40, "storage": 30, "streaming": 40},
			types.Scale:          {"small": 90, "medium": 85, "large": 75, "enterprise": 60},
			types.Budget:         {"veryLow": 70, "low": 80, "medium": 85, "high": 70},
			types.TrafficPattern: {"predictable": 85, "variable": 75, "spiky": 65},
			types.Customization:  {"low": 90, "medium": 80, "high": 60},
			types.Performance:    {"standard": 85, "high": 75, "lowLatency": 60},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 80, "fullControl": 50},
		},
		Pros: []string{
			"Simple deployment of web applications",
			"Supports multiple languages and platforms",
			"Managed platform updates and patches",
			"Auto-scaling and load balancing built in",
			"Developer-focused workflow",
		},
		Cons: []string{
			"Less flexible than container-based solutions",
			"Limited to specific application types",
			"Some platform restrictions",
			"Not ideal for microservices architectures",
			"Less control over infrastructure",
		},
		Alternatives: []string{"EC2", "ECS", "Lambda"},
	})

	// Storage
	c.Register(ServiceProfile{
		Name:        "S3",
		Category:    Storage,
		Description: "Object storage service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 80, "api": 70, "ml": 75, "data": 90, "serverless": 85, "storage": 100, "streaming": 70},
			types.Scale:          {"small": 90, "medium": 90, "large": 90, "enterprise": 90},
			types.Budget:         {"veryLow": 85, "low": 90, "medium": 90, "high": 90},
			types.TrafficPattern: {"predictable": 90, "variable": 90, "spiky": 90},
			types.Customization:  {"low": 90, "medium": 85, "high": 75},
			types.Performance:    {"standard": 85, "high": 80, "lowLatency": 60},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 85, "fullControl": 70},
		},
		Pros: []string{
			"Virtually unlimited scalability",
			"99.999999999% durability",
			"Cost-effective for any scale",
			"Multiple storage classes for cost optimization",
			"Native static website hosting",
		},
		Cons: []string{
			"Not suitable for file system access patterns",
			"Cannot be used as a boot volume",
			"Not suitable for frequently changing data",
			"Eventual consistency for some operations",
		},
		Alternatives: []string{"EFS", "EBS"},
	})

	c.Register(ServiceProfile{
		Name:        "EFS",
		Category:    Storage,
		Description: "Fully managed elastic NFS file system",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 75, "api": 60, "ml": 80, "data": 85, "serverless": 70, "storage": 95, "streaming": 60},
			types.Scale:          {"small": 70, "medium": 85, "large": 90, "enterprise": 90},
			types.Budget:         {"veryLow": 60, "low": 70, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 80, "spiky": 75},
			types.Customization:  {"low": 85, "medium": 80, "high": 70},
			types.Performance:    {"standard": 80, "high": 75, "lowLatency": 65},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 80, "fullControl": 60},
		},
		Pros: []string{
			"Fully managed shared file system",
			"Elastically scales to petabytes",
			"Multiple access modes (regional)",
			"Pay for what you use without provisioning",
			"Supports thousands of concurrent connections",
		},
		Cons: []string{
			"Higher latency than EBS",
			"More expensive than S3 for large datasets",
			"Regional access (not global like S3)",
			"Performance scales with size",
		},
		Alternatives: []string{"S3", "EBS"},
	})

	c.Register(ServiceProfile{
		Name:        "EBS",
		Category:    Storage,
		Description: "Block storage volumes for EC2 instances",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 75, "api": 70, "ml": 75, "data": 80, "serverless": 30, "storage": 90, "streaming": 60},
			types.Scale:          {"small": 80, "medium": 85, "large": 85, "enterprise": 85},
			types.Budget:         {"veryLow": 60, "low": 70, "medium": 80, "high": 85},
			types.TrafficPattern: {"predictable": 85, "variable": 75, "spiky": 70},
			types.Customization:  {"low": 80, "medium": 85, "high": 85},
			types.Performance:    {"standard": 80, "high": 85, "lowLatency": 90},
			types.OpsPreference:  {"fullyManaged": 70, "partial": 85, "fullControl": 90},
		},
		Pros: []string{
			"Low-latency block storage",
			"Multiple volume types for different workloads",
			"Independent lifecycle from EC2 instances",
			"Point-in-time snapshots",
			"High IOPS options available",
		},
		Cons: []string{
			"Must be attached to EC2 instances",
			"Limited to single AZ (except io2 Block Express)",
			"Need to provision capacity in advance",
			"Not shareable between instances (except with multi-attach)",
		},
		Alternatives: []string{"EFS", "S3"},
	})

	// Database
	c.Register(ServiceProfile{
		Name:        "RDS",
		Category:    Database,
		Description: "Managed relational database service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 90, "api": 85, "ml": 70, "data": 85, "serverless": 70, "storage": 75, "streaming": 60},
			types.Scale:          {"small": 85, "medium": 90, "large": 80, "enterprise": 75},
			types.Budget:         {"veryLow": 60, "low": 75, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 90, "variable": 80, "spiky": 65},
			types.Customization:  {"low": 90, "medium": 85, "high": 70},
			types.Performance:    {"standard": 85, "high": 80, "lowLatency": 75},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 80, "fullControl": 60},
		},
		Pros: []string{
			"Managed database with automated backups",
			"Multi-AZ deployments for high availability",
			"Supports multiple DB engines (MySQL, PostgreSQL, Oracle, SQL Server)",
			"Automated patching and maintenance",
			"Read replicas for scaling read-heavy workloads",
		},
		Cons: []string{
			"Higher cost than self-managed databases",
			"Some limitations on admin access",
			"Maintenance windows can disrupt service",
			"Limited customization of DB parameters",
			"Fixed scaling increments",
		},
		Alternatives: []string{"Aurora", "DynamoDB"},
	})

	c.Register(ServiceProfile{
		Name:        "DynamoDB",
		Category:    Database,
		Description: "Managed NoSQL database service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 80, "api": 90, "ml": 70, "data": 85, "serverless": 95, "storage": 80, "streaming": 85},
			types.Scale:          {"small": 90, "medium": 90, "large": 95, "enterprise": 95},
			types.Budget:         {"veryLow": 75, "low": 85, "medium": 90, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 90, "spiky": 95},
			types.Customization:  {"low": 90, "medium": 80, "high": 60},
			types.Performance:    {"standard": 90, "high": 95, "lowLatency": 95},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 80, "fullControl": 50},
		},
		Pros: []string{
			"Fully managed NoSQL database",
			"Single-digit millisecond latency",
			"Virtually unlimited throughput and storage",
			"Auto-scaling capabilities",
			"Global tables for multi-region deployment",
			"Pay for what you use with on-demand capacity",
		},
		Cons: []string{
			"Limited query patterns (key-value and limited indexes)",
			"Not suitable for complex joins or transactions",
			"Data modeling requires different approach than SQL",
			"Provisioned capacity needs monitoring",
			"Less flexible than traditional databases for complex queries",
		},
		Alternatives: []string{"RDS", "Aurora"},
	})

	c.Register(ServiceProfile{
		Name:        "Aurora",
		Category:    Database,
		Description: "MySQL and PostgreSQL compatible relational database",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 90, "api": 85, "ml": 70, "data": 90, "serverless": 75, "storage": 75, "streaming": 65},
			types.Scale:          {"small": 70, "medium": 85, "large": 95, "enterprise": 95},
			types.Budget:         {"veryLow": 50, "low": 65, "medium": 85, "high": 95},
			types.TrafficPattern: {"predictable": 85, "variable": 85, "spiky": 80},
			types.Customization:  {"low": 85, "medium": 85, "high": 80},
			types.Performance:    {"standard": 90, "high": 95, "lowLatency": 90},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 80, "fullControl": 65},
		},
		Pros: []string{
			"3-5x performance improvement over standard MySQL/PostgreSQL",
			"Distributed, fault-tolerant, self-healing storage",
			"Auto-scaling storage up to 128TB",
			"Up to 15 read replicas with sub-10ms replication",
			"Serverless option for variable workloads",
		},
		Cons: []string{
			"More expensive than standard RDS",
			"Some compatibility differences from MySQL/PostgreSQL",
			"Limited to MySQL and PostgreSQL compatibility",
			"Regional service (global database requires setup)",
			"Aurora Serverless has limitations with connections",
		},
		Alternatives: []string{"RDS", "DynamoDB"},
	})

	// Networking
	c.Register(ServiceProfile{
		Name:        "API Gateway",
		Category:    Networking,
		Description: "Create, publish, maintain, and secure APIs",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 75, "api": 100, "ml": 70, "data": 70, "serverless": 95, "storage": 60, "streaming": 75},
			types.Scale:          {"small": 90, "medium": 90, "large": 90, "enterprise": 85},
			types.Budget:         {"veryLow": 70, "low": 80, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 90, "spiky": 90},
			types.Customization:  {"low": 90, "medium": 85, "high": 75},
			types.Performance:    {"standard": 85, "high": 85, "lowLatency": 80},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 80, "fullControl": 60},
		},
		Pros: []string{
			"Fully managed API management service",
			"Request validation and transformation",
			"API keys, rate limiting, and throttling",
			"CloudWatch monitoring integration",
			"Automatic SDK generation",
			"WebSocket support",
		},
		Cons: []string{
			"Can be expensive at high volumes",
			"Gateway execution timeout limitations",
			"More complex configuration for advanced use cases",
			"Cold start latency when traffic spikes",
			"Limited to HTTP/HTTPS protocols",
		},
		Alternatives: []string{"ALB", "CloudFront"},
	})

	c.Register(ServiceProfile{
		Name:        "ALB",
		Category:    Networking,
		Description: "Application Load Balancer",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 95, "api": 90, "ml": 70, "data": 70, "serverless": 70, "storage": 50, "streaming": 70},
			types.Scale:          {"small": 75, "medium": 90, "large": 95, "enterprise": 95},
			types.Budget:         {"veryLow": 60, "low": 75, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 90, "variable": 90, "spiky": 85},
			types.Customization:  {"low": 90, "medium": 85, "high": 75},
			types.Performance:    {"standard": 90, "high": 85, "lowLatency": 80},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 85, "fullControl": 70},
		},
		Pros: []string{
			"Layer 7 (HTTP/HTTPS) load balancing",
			"Path-based routing",
			"Host-based routing",
			"Support for WebSockets and HTTP/2",
			"Integration with AWS Certificate Manager",
			"Target groups for flexible backend registration",
		},
		Cons: []string{
			"Higher cost than simple DNS round-robin",
			"Not suitable for non-HTTP protocols (use NLB instead)",
			"Requires proper subnet configuration",
			"Configuration complexity for advanced routing",
		},
		Alternatives: []string{"API Gateway", "CloudFront"},
	})

	c.Register(ServiceProfile{
		Name:        "CloudFront",
		Category:    Networking,
		Description: "Global content delivery network (CDN)",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 95, "api": 85, "ml": 60, "data": 70, "serverless": 80, "storage": 80, "streaming": 90},
			types.Scale:          {"small": 80, "medium": 85, "large": 90, "enterprise": 95},
			types.Budget:         {"veryLow": 65, "low": 75, "medium": 85, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 90, "spiky": 95},
			types.Customization:  {"low": 90, "medium": 85, "high": 75},
			types.Performance:    {"standard": 90, "high": 95, "lowLatency": 95},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 80, "fullControl": 70},
		},
		Pros: []string{
			"Global edge network for low latency",
			"Integrates with AWS Certificate Manager for SSL",
			"DDoS protection and AWS Shield integration",
			"Edge computing via Lambda@Edge",
			"Real-time metrics and logging",
			"Support for static and dynamic content",
		},
		Cons: []string{
			"Additional cost over direct S3/ALB access",
			"Cache invalidation can take time to propagate",
			"Complex pricing model",
			"Configuration complexity for advanced scenarios",
		},
		Alternatives: []string{"ALB", "API Gateway"},
	})

	// Messaging
	c.Register(ServiceProfile{
		Name:        "SQS",
		Category:    Messaging,
		Description: "Fully managed message queuing service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 70, "api": 80, "ml": 75, "data": 85, "serverless": 90, "storage": 60, "streaming": 90},
			types.Scale:          {"small": 85, "medium": 90, "large": 90, "enterprise": 90},
			types.Budget:         {"veryLow": 85, "low": 90, "medium": 90, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 90, "spiky": 95},
			types.Customization:  {"low": 90, "medium": 85, "high": 70},
			types.Performance:    {"standard": 85, "high": 80, "lowLatency": 70},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 80, "fullControl": 60},
		},
		Pros: []string{
			"Fully managed message queue",
			"Virtually unlimited throughput",
			"At-least-once message delivery",
			"FIFO queues available",
			"Message retention up to 14 days",
			"Batching support for higher throughput",
		},
		Cons: []string{
			"Not designed for pub/sub pattern (use SNS)",
			"Message size limited to 256KB",
			"No automatic fanout to multiple consumers",
			"Exactly-once processing requires additional logic",
			"FIFO queues have throughput limitations",
		},
		Alternatives: []string{"SNS", "Kinesis"},
	})

	c.Register(ServiceProfile{
		Name:        "SNS",
		Category:    Messaging,
		Description: "Fully managed pub/sub messaging service",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 75, "api": 85, "ml": 70, "data": 80, "serverless": 90, "storage": 60, "streaming": 95},
			types.Scale:          {"small": 85, "medium": 90, "large": 90, "enterprise": 90},
			types.Budget:         {"veryLow": 85, "low": 90, "medium": 90, "high": 90},
			types.TrafficPattern: {"predictable": 85, "variable": 90, "spiky": 95},
			types.Customization:  {"low": 90, "medium": 85, "high": 70},
			types.Performance:    {"standard": 90, "high": 85, "lowLatency": 80},
			types.OpsPreference:  {"fullyManaged": 95, "partial": 80, "fullControl": 60},
		},
		Pros: []string{
			"Pub/sub messaging with multiple subscribers",
			"Fan-out to multiple endpoints",
			"Support for Lambda, SQS, HTTP, email, SMS",
			"FIFO support for ordered delivery",
			"Message filtering capabilities",
			"Cross-region delivery",
		},
		Cons: []string{
			"No message persistence (use with SQS for durability)",
			"Message size limited to 256KB",
			"Best-effort ordering (except FIFO)",
			"No dead-letter queue support (must use with SQS)",
			"Mobile push notification requires setup",
		},
		Alternatives: []string{"SQS", "Kinesis"},
	})

	// Streaming
	c.Register(ServiceProfile{
		Name:        "Kinesis",
		Category:    Streaming,
		Description: "Process and analyze real-time streaming data",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 60, "api": 70, "ml": 85, "data": 90, "serverless": 80, "storage": 70, "streaming": 100},
			types.Scale:          {"small": 60, "medium": 80, "large": 95, "enterprise": 95},
			types.Budget:         {"veryLow": 50, "low": 70, "medium": 85, "high": 95},
			types.TrafficPattern: {"predictable": 80, "variable": 90, "spiky": 90},
			types.Customization:  {"low": 80, "medium": 85, "high": 90},
			types.Performance:    {"standard": 85, "high": 90, "lowLatency": 90},
			types.OpsPreference:  {"fullyManaged": 85, "partial": 90, "fullControl": 75},
		},
		Pros: []string{
			"Real-time processing of streaming data",
			"Durable storage of stream data",
			"Multiple consumers of the same stream",
			"Integrates with Lambda, Firehose, Analytics",
			"Ordered record delivery within shards",
			"Data retention up to 365 days",
		},
		Cons: []string{
			"Requires shard management",
			"More complex setup than simple messaging",
			"Provisioned capacity model (need to manage shard count)",
			"More expensive than batch processing for high volumes",
			"Resharding operations can be complex",
		},
		Alternatives: []string{"SQS", "SNS"},
	})

	// Machine Learning
	c.Register(ServiceProfile{
		Name:        "SageMaker",
		Category:    MachineLearning,
		Description: "Build, train, and deploy ML models",
		Scores: types.ScoreTable{
			types.WorkloadType:   {"webApp": 50, "api": 70, "ml": 100, "data": 80, "serverless": 70, "storage": 50, "streaming": 75},
			types.Scale:          {"small": 70, "medium": 80, "large": 90, "enterprise": 95},
			types.Budget:         {"veryLow": 40, "low": 60, "medium": 80, "high": 95},
			types.TrafficPattern: {"predictable": 85, "variable": 80, "spiky": 75},
			types.Customization:  {"low": 80, "medium": 90, "high": 95},
			types.Performance:    {"standard": 85, "high": 90, "lowLatency": 80},
			types.OpsPreference:  {"fullyManaged": 90, "partial": 85, "fullControl": 80},
		},
		Pros: []string{
			"End-to-end ML workflow support",
			"Built-in algorithms and support for custom models",
			"Managed Jupyter notebooks",
			"Automated model tuning",
			"Distributed training capabilities",
			"Model monitoring and versioning",
		},
		Cons: []string{
			"Relatively high cost for long-running instances",
			"Learning curve for effective use",
			"Some configuration complexity",
			"Less cost-effective for small-scale ML",
			"Requires ML expertise for best results",
		},
		Alternatives: []string{"EC2 with custom ML frameworks", "Lambda for inference"},
	})
}
