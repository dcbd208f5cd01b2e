package ordering

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/burger-house/internal/application/dto"
	"github.com/jhoicas/burger-house/internal/domain"
)

// MinAddressLength largo mínimo de la dirección de entrega.
const MinAddressLength = 5

var (
	reName  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	rePhone = regexp.MustCompile(`^\d{10,}$`)
	reCard  = regexp.MustCompile(`^\d{16}$`)
	reCVV   = regexp.MustCompile(`^\d{3}$`)
	reSpace = regexp.MustCompile(`\s`)
)

// ValidateCheckout revisa los datos de entrega y pago en el mismo orden que el formulario;
// devuelve el primer problema encontrado.
func ValidateCheckout(in dto.CheckoutRequest) error {
	if !reName.MatchString(in.Name) {
		return fmt.Errorf("%w: el nombre solo puede contener letras", domain.ErrInvalidInput)
	}
	if !rePhone.MatchString(in.Phone) {
		return fmt.Errorf("%w: el teléfono debe tener al menos 10 dígitos", domain.ErrInvalidInput)
	}
	if len(in.Address) < MinAddressLength {
		return fmt.Errorf("%w: dirección inválida", domain.ErrInvalidInput)
	}
	switch strings.ToLower(in.PaymentMethod) {
	case "", dto.PaymentCashOnDelivery:
	case dto.PaymentCard:
		if !reCard.MatchString(reSpace.ReplaceAllString(in.CardNumber, "")) {
			return fmt.Errorf("%w: número de tarjeta inválido (16 dígitos)", domain.ErrInvalidInput)
		}
		if !reCVV.MatchString(in.CVV) {
			return fmt.Errorf("%w: CVV inválido (3 dígitos)", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	return nil
}
