package nakama

const (
	// RpcDecide asks a strategy for the best action in a posted snapshot.
	RpcDecide = "lundao_decide"
	// RpcStrategies lists the registered strategies.
	RpcStrategies = "lundao_strategies"
	// RpcBenchmark evaluates a strategy over seeded sandbox games.
	RpcBenchmark = "lundao_benchmark"

	// EnvConfigPath is the runtime env key holding the YAML config path.
	EnvConfigPath = "lundao_config"
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
)
