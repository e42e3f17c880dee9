package txbuilder

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI fragments for the two contracts the app talks to. The contract surface
// is fixed; these mirror the deployed artifacts on Base Sepolia.
const tokenABIJSON = `[
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"type":"uint8"}]}
]`

const rideShareABIJSON = `[
	{"type":"function","name":"createRide","stateMutability":"payable","inputs":[{"name":"_startLocation","type":"string"},{"name":"_endLocation","type":"string"},{"name":"_departureTime","type":"uint256"},{"name":"_pricePerSeat","type":"uint256"},{"name":"_totalSeats","type":"uint8"},{"name":"_paymentMethod","type":"uint8"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"bookRide","stateMutability":"payable","inputs":[{"name":"_rideId","type":"uint256"},{"name":"_seatsToBook","type":"uint8"}],"outputs":[{"type":"uint256"}]},
	{"type":"function","name":"completeRide","stateMutability":"nonpayable","inputs":[{"name":"_rideId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"completeBooking","stateMutability":"nonpayable","inputs":[{"name":"_bookingId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"cancelRide","stateMutability":"nonpayable","inputs":[{"name":"_rideId","type":"uint256"},{"name":"_reason","type":"string"}],"outputs":[]},
	{"type":"function","name":"cancelBooking","stateMutability":"nonpayable","inputs":[{"name":"_bookingId","type":"uint256"},{"name":"_reason","type":"string"}],"outputs":[]},
	{"type":"function","name":"claimRewards","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"getRide","stateMutability":"view","inputs":[{"name":"_rideId","type":"uint256"}],"outputs":[{"type":"uint256"},{"type":"address"},{"type":"string"},{"type":"string"},{"type":"uint256"},{"type":"uint256"},{"type":"uint8"},{"type":"uint8"},{"type":"uint8"},{"type":"bool"}]},
	{"type":"function","name":"getBooking","stateMutability":"view","inputs":[{"name":"_bookingId","type":"uint256"}],"outputs":[{"type":"uint256"},{"type":"uint256"},{"type":"address"},{"type":"uint8"},{"type":"uint256"},{"type":"bool"}]},
	{"type":"function","name":"getUserRides","stateMutability":"view","inputs":[{"name":"_user","type":"address"}],"outputs":[{"type":"uint256[]"}]},
	{"type":"function","name":"getUserBookings","stateMutability":"view","inputs":[{"name":"_user","type":"address"}],"outputs":[{"type":"uint256[]"}]},
	{"type":"function","name":"getPendingRewards","stateMutability":"view","inputs":[{"name":"_user","type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"event","name":"RideCreated","inputs":[{"name":"rideId","type":"uint256","indexed":true},{"name":"driver","type":"address","indexed":true}],"anonymous":false},
	{"type":"event","name":"BookingCreated","inputs":[{"name":"bookingId","type":"uint256","indexed":true},{"name":"rideId","type":"uint256","indexed":true},{"name":"passenger","type":"address","indexed":true}],"anonymous":false}
]`

var (
	// TokenABI is the parsed fungible token ABI.
	TokenABI = mustParseABI(tokenABIJSON)
	// RideShareABI is the parsed ride-share contract ABI.
	RideShareABI = mustParseABI(rideShareABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("txbuilder: invalid contract ABI: " + err.Error())
	}
	return parsed
}
