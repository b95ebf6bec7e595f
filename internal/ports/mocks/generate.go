//go:generate mockgen -source=../gateway.go             -destination=./mock_gateway.go             -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../order_fetch_service.go -destination=./mock_order_fetch_service.go -package=mocks
//go:generate mockgen -source=../result_validator.go    -destination=./mock_result_validator.go    -package=mocks

package mocks
