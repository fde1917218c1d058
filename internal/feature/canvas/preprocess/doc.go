// Package preprocess は描画ラスタを分類器向けの8x8特徴量ベクトルへ変換します。
//
// 変換は4段階で、いずれも入力を変更しない純粋関数です。
//
//  1. InkBoundingBox: インク（グレー値 < 220）を囲む矩形を求める
//  2. Recenter: 矩形領域を白い200x200キャンバスの中央へ等倍で貼り付ける
//  3. Downsample: 25x25ブロックごとの平均グレー値を 0〜16 に縮尺する
//  4. Invert: 各値を 16 - v に置き換える
//
// 入力は常に200x200である必要があります。他のサイズは扱いません。
package preprocess
