package stock

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func transferReq(from, to string) dto.TransferRequest {
	return dto.TransferRequest{
		FromWarehouseID: from,
		ToWarehouseID:   to,
		OutTypeID:       testTypeOutID,
		InTypeID:        testTypeInID,
		ContractorID:    testContractorID,
		Lines:           []dto.DocumentLineRequest{lineReq(testAssetAID, 5)},
	}
}

func TestTransfer_CreaParDeDocumentos(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()
	env.stock.set(testCentralID, testAssetAID, 8)

	resp, err := uc.Transfer(context.Background(), testUserID, transferReq(testCentralID, testAuxiliarID))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.TransferID)
	assert.Equal(t, resp.TransferID, resp.Out.TransferID)
	assert.Equal(t, resp.TransferID, resp.In.TransferID)

	assert.Equal(t, entity.DirectionOut, resp.Out.Direction)
	assert.Equal(t, testCentralID, resp.Out.WarehouseID)
	assert.Equal(t, entity.DirectionIn, resp.In.Direction)
	assert.Equal(t, testAuxiliarID, resp.In.WarehouseID)
	assert.NotEqual(t, resp.Out.ID, resp.In.ID)

	// Mismas cantidades en ambos lados, con signo opuesto.
	require.Len(t, resp.Out.Lines, 1)
	require.Len(t, resp.In.Lines, 1)
	assert.True(t, resp.Out.Lines[0].SignedAmount.Equal(decimal.NewFromInt(-5)))
	assert.True(t, resp.In.Lines[0].SignedAmount.Equal(decimal.NewFromInt(5)))
	assert.NotEqual(t, resp.Out.Lines[0].ID, resp.In.Lines[0].ID)

	require.Len(t, env.docs.created, 2)
	assert.Equal(t, resp.Out.ID, env.docs.created[0].ID)
	assert.Equal(t, resp.In.ID, env.docs.created[1].ID)
	for _, d := range env.docs.created {
		for _, l := range d.Lines {
			assert.Equal(t, d.ID, l.DocumentID)
		}
	}
}

func TestTransfer_MismoAlmacen(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()

	_, err := uc.Transfer(context.Background(), testUserID, transferReq(testCentralID, testCentralID))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_DireccionesInvertidas(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()
	env.stock.set(testCentralID, testAssetAID, 8)

	req := transferReq(testCentralID, testAuxiliarID)
	req.OutTypeID, req.InTypeID = req.InTypeID, req.OutTypeID
	_, err := uc.Transfer(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.docs.created)
}

func TestTransfer_AlmacenInexistente(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()

	_, err := uc.Transfer(context.Background(), testUserID, transferReq(testCentralID, "no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_TipoInexistente(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()

	req := transferReq(testCentralID, testAuxiliarID)
	req.InTypeID = "no-existe"
	_, err := uc.Transfer(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_ExistenciaInsuficiente(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()
	env.stock.set(testCentralID, testAssetAID, 4)

	_, err := uc.Transfer(context.Background(), testUserID, transferReq(testCentralID, testAuxiliarID))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	// Ningún documento del par debe quedar registrado.
	assert.Empty(t, env.docs.created)
}

func TestTransfer_DescuentaExistenciaDelOrigen(t *testing.T) {
	env := newStockEnv()
	env.stock.set(testCentralID, testAssetAID, 8)

	_, err := env.transferUC().Transfer(context.Background(), testUserID, transferReq(testCentralID, testAuxiliarID))
	require.NoError(t, err)
	assert.Contains(t, env.stock.locked, testCentralID+"|"+testAssetAID)

	// El origen queda con 3: una salida de 4 ya no alcanza.
	_, err = env.registerUC().Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeOutID,
		WarehouseID:  testCentralID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 4)},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El destino recibió los 5: allí la misma salida sí procede.
	_, err = env.registerUC().Register(context.Background(), testUserID, dto.RegisterDocumentRequest{
		TypeID:       testTypeOutID,
		WarehouseID:  testAuxiliarID,
		ContractorID: testContractorID,
		Lines:        []dto.DocumentLineRequest{lineReq(testAssetAID, 5)},
	})
	require.NoError(t, err)
}

func TestTransfer_LineasInvalidas(t *testing.T) {
	env := newStockEnv()
	uc := env.transferUC()
	env.stock.set(testCentralID, testAssetAID, 8)

	req := transferReq(testCentralID, testAuxiliarID)
	req.Lines = []dto.DocumentLineRequest{lineReq(testAssetAID, 5), lineReq(testAssetAID, 1)}
	_, err := uc.Transfer(context.Background(), testUserID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
