package payment

import (
	"strings"

	"bazaar-be/internal/money"

	"golang.org/x/text/language"
)

var InstructionMap = map[Method][]string{
	MethodCOD: {
		"Your order will be delivered to the shipping address",
		"Keep {{amount}} in cash ready when the rider arrives",
		"Pay the rider directly and collect your receipt",
	},

	// ========================
	// MOBILE WALLETS
	// ========================
	MethodEasypaisa: {
		"Make sure the Easypaisa app is installed and active on {{account}}",
		"You will receive a push notification for {{amount}}",
		"Confirm the payment with your PIN",
	},

	MethodJazzCash: {
		"Make sure the JazzCash app is installed and active on {{account}}",
		"You will receive a push notification for {{amount}}",
		"Confirm the payment with your PIN",
	},

	// ========================
	// CARD
	// ========================
	MethodCard: {
		"Enter your card number, expiry date and CVV",
		"Complete the verification sent by your bank",
		"Wait until the payment of {{amount}} is confirmed",
	},
}

func GetInstructions(method Method) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

func InjectVariables(
	steps []string,
	vars InstructionVars,
) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}

// Instructions returns the steps for method with the amount and account filled in.
func Instructions(method Method, amount money.Amount, account string, tag language.Tag) []string {
	vars := InstructionVars{"amount": money.Format(amount, tag)}
	if account != "" {
		vars["account"] = account
	} else {
		vars["account"] = "your registered number"
	}
	return InjectVariables(GetInstructions(method), vars)
}
